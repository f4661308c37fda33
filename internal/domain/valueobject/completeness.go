// Package valueobject contains domain value objects for the billing reconciliation system.
package valueobject

// Completeness is the traffic-light state of a projected obligation.
type Completeness string

const (
	CompletenessRed    Completeness = "red"
	CompletenessYellow Completeness = "yellow"
	CompletenessGreen  Completeness = "green"
)

// ClassifyCompleteness derives the traffic light from the document and payment flags.
// Red: no payment. Yellow: paid but order or paperwork incomplete. Green: both.
func ClassifyCompleteness(hasOrder, documentComplete, hasActualPayment bool) Completeness {
	if !hasActualPayment {
		return CompletenessRed
	}
	if hasOrder && documentComplete {
		return CompletenessGreen
	}
	return CompletenessYellow
}
