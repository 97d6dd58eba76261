// Package consts provides the jiractl operation names.
package consts

// Operation names, as exposed on the command line.
const (
	// Comment operations.
	ListComments = "list-comments"
	AddComment   = "add-comment"
	EditComment  = "edit-comment"
	ShowComment  = "show-comment"

	// Issue operations.
	CreateIssue  = "create-issue"
	EditIssue    = "edit-issue"
	ShowIssue    = "show-issue"
	ListIssues   = "list-issues"
	SearchIssues = "search-issues"

	// Label operations.
	ListLabels = "list-labels"
	AddLabel   = "add-label"
	DropLabel  = "drop-label"

	// Link operations.
	ListLinks = "list-links"
	AddLink   = "add-link"
	ShowLink  = "show-link"
	DropLink  = "drop-link"

	// Configuration operations.
	Init = "init"
)
