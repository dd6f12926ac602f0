package validation

import "regexp"

var (
	kebabCasePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
	snakeCasePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)
)

// IsKebabCase reports whether name is lowercase alphanumeric tokens joined by
// single hyphens, starting with a letter.
func IsKebabCase(name string) bool {
	return kebabCasePattern.MatchString(name)
}

// IsSnakeCase reports whether name is lowercase alphanumeric tokens joined by
// single underscores, starting with a letter.
func IsSnakeCase(name string) bool {
	return snakeCasePattern.MatchString(name)
}

// Convention is the naming rule a component category must satisfy.
type Convention int

const (
	// ConventionKebab requires kebab-case.
	ConventionKebab Convention = iota
	// ConventionKebabOrSnake accepts kebab-case or snake_case.
	ConventionKebabOrSnake
)

// Matches reports whether name satisfies the convention.
func (c Convention) Matches(name string) bool {
	switch c {
	case ConventionKebabOrSnake:
		return IsKebabCase(name) || IsSnakeCase(name)
	default:
		return IsKebabCase(name)
	}
}

// String returns the wording used in issue messages.
func (c Convention) String() string {
	switch c {
	case ConventionKebabOrSnake:
		return "kebab-case or snake_case"
	default:
		return "kebab-case"
	}
}

// componentConventions maps each component kind to its naming rule.
var componentConventions = map[ComponentKind]Convention{
	ComponentAgent:   ConventionKebab,
	ComponentSkill:   ConventionKebab,
	ComponentCommand: ConventionKebabOrSnake,
}

// ConventionFor returns the naming rule for a component kind.
func ConventionFor(kind ComponentKind) Convention {
	return componentConventions[kind]
}
