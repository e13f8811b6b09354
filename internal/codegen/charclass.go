package codegen

import (
	"github.com/dave/jennifer/jen"

	"github.com/KromDaniel/regnfa/internal/charset"
)

// generateRuneCondition generates the condition for c being a member of
// the symbol set.
func generateRuneCondition(symbols charset.Set) jen.Code {
	ranges := symbols.Ranges()
	if len(ranges) == 0 {
		return jen.False()
	}

	ch := jen.Id(CharName)
	var conditions []jen.Code
	for _, rg := range ranges {
		lo, hi := rg[0], rg[1]
		if lo == hi {
			conditions = append(conditions, ch.Clone().Op("==").LitRune(lo))
			continue
		}
		conditions = append(conditions,
			jen.Parens(ch.Clone().Op(">=").LitRune(lo).Op("&&").Add(ch.Clone()).Op("<=").LitRune(hi)),
		)
	}

	if len(conditions) == 1 {
		return conditions[0]
	}

	// wrap so the result binds correctly next to && in the state check
	result := jen.Add(conditions[0])
	for _, cond := range conditions[1:] {
		result = result.Op("||").Add(cond)
	}
	return jen.Parens(result)
}
