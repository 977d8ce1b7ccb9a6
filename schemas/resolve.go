package schemas

import "strings"

// Rule names the resolution rule that produced a Type.
type Rule string

const (
	// RuleEnum matched the "enum (...)" notation
	RuleEnum Rule = "enum"
	// RuleKnown matched an entry of the fixed token table
	RuleKnown Rule = "known"
	// RuleFallback matched nothing and produced a plain string
	RuleFallback Rule = "fallback"
)

const (
	enumPrefix    = "enum ("
	enumSuffix    = ")"
	enumSeparator = ", "
)

// knownTypes maps raw type tokens to constructors. Constructors rather than
// values so every resolution hands out fresh Items pointers.
var knownTypes = map[string]func() Type{
	"integer(int32)":   func() Type { return Integer(FormatInt32) },
	"integer(int64)":   func() Type { return Integer(FormatInt64) },
	"number(float)":    func() Type { return Number(FormatFloat) },
	"boolean":          Boolean,
	"< string > array": func() Type { return ArrayOf(String()) },
	"Map":              Object,
	"Object":           Object,
}

// resolver is one (predicate, constructor) pair.
type resolver struct {
	rule  Rule
	match func(raw string) bool
	build func(raw string) Type
}

// resolvers are evaluated in order; the enum check must run before the table.
var resolvers = []resolver{
	{rule: RuleEnum, match: isEnum, build: enumType},
	{rule: RuleKnown, match: isKnown, build: knownType},
}

// Resolve maps raw type text from a property table onto a Type.
// It never fails: text that no rule recognizes becomes a plain string.
func Resolve(raw string) Type {
	t, _ := resolve(raw)
	return t
}

// Classify reports which rule Resolve applies to raw.
func Classify(raw string) Rule {
	_, rule := resolve(raw)
	return rule
}

func resolve(raw string) (Type, Rule) {
	for _, r := range resolvers {
		if r.match(raw) {
			return r.build(raw), r.rule
		}
	}
	return String(), RuleFallback
}

func isEnum(raw string) bool {
	return len(raw) >= len(enumPrefix)+len(enumSuffix) &&
		strings.HasPrefix(raw, enumPrefix) &&
		strings.HasSuffix(raw, enumSuffix)
}

// enumType splits the literal list on ", " exactly; values are kept verbatim.
func enumType(raw string) Type {
	inner := raw[len(enumPrefix) : len(raw)-len(enumSuffix)]
	return String(strings.Split(inner, enumSeparator)...)
}

func isKnown(raw string) bool {
	_, ok := knownTypes[raw]
	return ok
}

func knownType(raw string) Type {
	return knownTypes[raw]()
}
