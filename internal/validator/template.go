// Package validator lints parsed templates for problems that parsing
// tolerates but matching cannot.
package validator

import (
	"fmt"
	"regexp"

	"spdxmatch/internal/config"
	"spdxmatch/internal/models"
)

// ValidationError describes one problem with its source line.
type ValidationError struct {
	Field   string
	Value   string
	Pattern string
	Message string
	Line    int
}

func (e ValidationError) String() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}

	return e.Message
}

// ValidationResult contains lint results.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
	Stats    ValidationStats
	IsValid  bool
}

// ValidationStats counts the nodes of a template.
type ValidationStats struct {
	NodesByKind map[string]int
	TotalNodes  int
	MaxDepth    int
}

// TemplateValidator lints templates.
type TemplateValidator struct {
	cfg config.ValidationConfig
}

// NewTemplateValidator creates a validator.
func NewTemplateValidator(cfg config.ValidationConfig) *TemplateValidator {
	return &TemplateValidator{cfg: cfg}
}

// Validate lints tmpl. Errors make the result invalid; warnings do not.
func (v *TemplateValidator) Validate(tmpl *models.Template) *ValidationResult {
	result := &ValidationResult{
		IsValid:  true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
		Stats:    ValidationStats{NodesByKind: map[string]int{}},
	}

	if tmpl.Kind != models.KindFragment {
		if tmpl.ID == "" {
			result.Warnings = append(result.Warnings, ValidationError{Field: "licenseId", Message: "template has no licenseId"})
		}

		if tmpl.Name == "" {
			result.Warnings = append(result.Warnings, ValidationError{Field: "name", Message: "template has no name"})
		}
	}

	tmpl.Walk(func(n *models.Node, depth int) {
		result.Stats.TotalNodes++
		result.Stats.NodesByKind[n.Kind.String()]++

		if depth > result.Stats.MaxDepth {
			result.Stats.MaxDepth = depth
		}

		v.checkNode(n, result)
	})

	result.IsValid = len(result.Errors) == 0

	return result
}

func (v *TemplateValidator) checkNode(n *models.Node, result *ValidationResult) {
	if n.Kind.HasSpacing() && n.Spacing == models.SpacingInvalid {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "spacing",
			Value:   n.SpacingRaw,
			Message: fmt.Sprintf("invalid spacing value %q on <%s>", n.SpacingRaw, n.Kind),
			Line:    n.Line,
		})
	}

	switch n.Kind {
	case models.KindAlt:
		if n.Pattern == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "match",
				Message: "alt element has no match pattern",
				Line:    n.Line,
			})

			return
		}

		if v.cfg.CheckPatterns {
			if _, err := regexp.Compile(n.Pattern); err != nil {
				result.Warnings = append(result.Warnings, ValidationError{
					Field:   "match",
					Pattern: n.Pattern,
					Message: fmt.Sprintf("match pattern does not compile: %v", err),
					Line:    n.Line,
				})
			}
		}
	case models.KindOptional:
		if len(n.Children) == 0 {
			result.Warnings = append(result.Warnings, ValidationError{
				Message: "optional element is empty",
				Line:    n.Line,
			})
		}
	}
}

// String returns string representation of validation result.
func (r *ValidationResult) String() string {
	status := "VALID"
	if !r.IsValid {
		status = "INVALID"
	}

	return fmt.Sprintf(
		"%s | Nodes: %d | Depth: %d | Errors: %d | Warnings: %d",
		status,
		r.Stats.TotalNodes,
		r.Stats.MaxDepth,
		len(r.Errors),
		len(r.Warnings),
	)
}
