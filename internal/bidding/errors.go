package bidding

import (
	"errors"
	"fmt"
)

// StructureError reports a defect in a rule tree's construction or authoring.
//
// Structural errors fall into two groups:
//   - Construction-time: a Decision missing a branch or condition, an
//     Outcome missing its produce function. Reported eagerly by the node
//     constructors, never deferred to evaluation.
//   - Authoring-invariant: an auction-category condition nested strictly
//     below a hand-category one on a matched path. Detected only by the
//     sibling engine, which walks paths structurally.
//
// Both indicate programmer error in the tree definition, not runtime
// conditions to recover from.
type StructureError struct {
	// Code identifies the error category.
	Code StructureErrorCode

	// Message is a human-readable description.
	Message string

	// Node names the offending node, when known.
	Node string
}

// StructureErrorCode categorizes structural errors.
type StructureErrorCode string

const (
	// ErrCodeMissingBranch indicates a Decision was built without both branches.
	ErrCodeMissingBranch StructureErrorCode = "MISSING_BRANCH"

	// ErrCodeMissingCondition indicates a Decision was built without a test.
	ErrCodeMissingCondition StructureErrorCode = "MISSING_CONDITION"

	// ErrCodeMissingProduce indicates an Outcome was built without a produce function.
	ErrCodeMissingProduce StructureErrorCode = "MISSING_PRODUCE"

	// ErrCodeMissingName indicates a node was built without a name.
	ErrCodeMissingName StructureErrorCode = "MISSING_NAME"

	// ErrCodeCategoryOrder indicates an auction-category condition nested
	// below a hand-category one on a matched path.
	ErrCodeCategoryOrder StructureErrorCode = "CATEGORY_ORDER"

	// ErrCodeOutcomeNotFound indicates the sibling engine was asked to
	// explain an outcome the tree does not contain.
	ErrCodeOutcomeNotFound StructureErrorCode = "OUTCOME_NOT_FOUND"
)

// Error implements the error interface.
func (e *StructureError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("%s: %s (node=%s)", e.Code, e.Message, e.Node)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsCategoryOrderError reports whether err is a category-ordering violation.
// Uses errors.As to handle wrapped errors.
func IsCategoryOrderError(err error) bool {
	var se *StructureError
	if errors.As(err, &se) {
		return se.Code == ErrCodeCategoryOrder
	}
	return false
}

// IsStructureError reports whether err is any structural error.
func IsStructureError(err error) bool {
	var se *StructureError
	return errors.As(err, &se)
}

func newStructureError(code StructureErrorCode, node, message string) *StructureError {
	return &StructureError{Code: code, Message: message, Node: node}
}
