package match_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/gitrdm/goegison/pkg/match"
)

func TestTraceNilLogsNothing(t *testing.T) {
	target := m.IntList(1, 2, 3)
	clause := m.NewClause(m.Cons(m.VarBind("x"), m.VarBind("xs")), func(m.Bindings) int { return 1 })
	_, err := m.MatchFirstTrace(target, m.ListMatcher(m.Eq()), []m.Clause[int]{clause}, nil)
	assert.NoError(t, err)
}

func TestTraceLogsCorrelatedLines(t *testing.T) {
	var buf bytes.Buffer
	tr := m.NewTrace(log.New(&buf, "", 0))

	target := m.IntList(1, 2, 3)
	clause := m.NewClause(m.Cons(m.VarBind("x"), m.VarBind("xs")), func(m.Bindings) int { return 1 })
	_, err := m.MatchFirstTrace(target, m.ListMatcher(m.Eq()), []m.Clause[int]{clause}, tr)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "[match:")
	assert.Contains(t, buf.String(), "clause 0 matched")
}
