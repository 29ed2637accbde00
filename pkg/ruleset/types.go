package ruleset

import (
	"time"

	"github.com/google/uuid"

	"github.com/mgvdev/verdict/pkg/rule"
)

// Rule is a named, loaded rule: identity and metadata around an
// executable tree.
type Rule struct {
	// ID uniquely identifies this loaded rule instance.
	ID uuid.UUID

	// Name is the registry key. Unique within a rule set.
	Name string

	// Description is optional free-form documentation.
	Description string

	// Tags are optional labels for grouping and filtering.
	Tags []string

	// Root is the executable rule tree.
	Root rule.Node

	// Doc is the canonical document form of Root.
	Doc *rule.Document

	// SourceFile is the path the rule was loaded from, when file-backed.
	SourceFile string

	// LoadedAt records when the rule was loaded.
	LoadedAt time.Time
}

// Evaluate evaluates the rule tree against a context.
func (r *Rule) Evaluate(ctx any) bool {
	return r.Root.Evaluate(ctx)
}
