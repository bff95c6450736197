package stochastic

// LogDomainThreshold sets the count (trials, population size or observed
// value) above which probability mass functions are evaluated as
// exp(log pmf) instead of by direct products.
const LogDomainThreshold = 100

// DefaultThreshold is the fraction of probability mass a support window
// must capture when the caller does not ask for another one.
const DefaultThreshold = 0.999

// Support window heuristics for unbounded families. The window spans
// StdDevWidth standard deviations around the mean; Poisson windows are at
// least MinPoissonWidth wide so small rates still get a usable axis.
const (
	StdDevWidth     = 4.0
	MinPoissonWidth = 15
)

// MaxSupportWindow caps the number of values in any support window.
const MaxSupportWindow = 100_000

// MaxQuantileSteps caps the number of terms a quantile scan may sum.
const MaxQuantileSteps = 1_000_000

// MaxEvents caps the number of event times produced in one call.
const MaxEvents = 100_000
