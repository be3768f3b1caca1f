package model

// Summary holds the top-level aggregate over a goal list.
type Summary struct {
	Total      int
	NotStarted int
	InProgress int
	Completed  int

	// AverageCompletion is the mean completion percentage, 0-100.
	AverageCompletion float64
	// Overdue counts incomplete goals whose end date has passed.
	Overdue int

	StepsDone  int
	StepsTotal int

	ByCategory []CategoryStats
}

// CategoryStats holds counts for one category.
type CategoryStats struct {
	Category          Category
	Goals             int
	Completed         int
	AverageCompletion float64
}
