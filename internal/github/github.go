// Package github holds the GitHub domain values a column can filter on and
// the display metadata for each of them.
//
// The lookup functions are total over the enumerated values. Unknown values
// still get a usable label derived from the raw value.
package github

import "strings"

// Metadata is the display information for one raw domain value.
type Metadata struct {
	Label       string
	Color       string
	Description string
}

// Lookup maps a raw domain value to its metadata.
type Lookup func(value string) Metadata

// Notification subject types.
const (
	SubjectCommit             = "Commit"
	SubjectIssue              = "Issue"
	SubjectPullRequest        = "PullRequest"
	SubjectRelease            = "Release"
	SubjectRepositoryInvite   = "RepositoryInvitation"
	SubjectVulnerabilityAlert = "RepositoryVulnerabilityAlert"
)

// Additional subject types only produced by the events API.
const (
	SubjectBranch                   = "Branch"
	SubjectCommitComment            = "CommitComment"
	SubjectIssueComment             = "IssueComment"
	SubjectPullRequestReview        = "PullRequestReview"
	SubjectPullRequestReviewComment = "PullRequestReviewComment"
	SubjectRepository               = "Repository"
	SubjectTag                      = "Tag"
	SubjectUser                     = "User"
	SubjectWiki                     = "Wiki"
)

// NotificationSubjectTypes lists the subject types of the notifications API.
var NotificationSubjectTypes = []string{
	SubjectCommit,
	SubjectIssue,
	SubjectPullRequest,
	SubjectRelease,
	SubjectRepositoryInvite,
	SubjectVulnerabilityAlert,
}

// EventSubjectTypes lists the subject types of the events API.
var EventSubjectTypes = []string{
	SubjectBranch,
	SubjectCommit,
	SubjectCommitComment,
	SubjectIssue,
	SubjectIssueComment,
	SubjectPullRequest,
	SubjectPullRequestReview,
	SubjectPullRequestReviewComment,
	SubjectRelease,
	SubjectRepository,
	SubjectTag,
	SubjectUser,
	SubjectWiki,
}

// IssueOrPRSubjectTypes lists the subject types of issue and pull request columns.
var IssueOrPRSubjectTypes = []string{
	SubjectIssue,
	SubjectPullRequest,
}

// NotificationReasons lists the reasons GitHub gives for a notification.
var NotificationReasons = []string{
	"assign",
	"author",
	"comment",
	"invitation",
	"manual",
	"mention",
	"review_requested",
	"security_alert",
	"state_change",
	"subscribed",
	"team_mention",
}

// EventActions lists the normalized actions of activity events.
var EventActions = []string{
	"added",
	"commented",
	"created",
	"deleted",
	"forked",
	"member_added",
	"made_public",
	"pushed",
	"released",
	"reviewed",
	"starred",
	"updated",
}

var subjectTypeMetadata = map[string]Metadata{
	SubjectBranch:                   {Label: "Branch", Color: "#60A5FA"},
	SubjectCommit:                   {Label: "Commit", Color: "#9CA3AF"},
	SubjectCommitComment:            {Label: "Commit comment", Color: "#9CA3AF"},
	SubjectIssue:                    {Label: "Issue", Color: "#10B981"},
	SubjectIssueComment:             {Label: "Issue comment", Color: "#10B981"},
	SubjectPullRequest:              {Label: "Pull Request", Color: "#A78BFA"},
	SubjectPullRequestReview:        {Label: "Pull Request review", Color: "#A78BFA"},
	SubjectPullRequestReviewComment: {Label: "Pull Request comment", Color: "#A78BFA"},
	SubjectRelease:                  {Label: "Release", Color: "#F472B6"},
	SubjectRepository:               {Label: "Repository", Color: "#9CA3AF"},
	SubjectRepositoryInvite:         {Label: "Invitation", Color: "#F59E0B"},
	SubjectVulnerabilityAlert:       {Label: "Security Alert", Color: "#F87171"},
	SubjectTag:                      {Label: "Tag", Color: "#60A5FA"},
	SubjectUser:                     {Label: "User", Color: "#9CA3AF"},
	SubjectWiki:                     {Label: "Wiki", Color: "#9CA3AF"},
}

var reasonMetadata = map[string]Metadata{
	"assign":           {Label: "Assigned", Color: "#F472B6", Description: "You were assigned to the Issue"},
	"author":           {Label: "Author", Color: "#60A5FA", Description: "You created the thread"},
	"comment":          {Label: "Commented", Color: "#FBBF24", Description: "You commented on the thread"},
	"invitation":       {Label: "Invited", Color: "#9CA3AF", Description: "You accepted an invitation to contribute to the repository"},
	"manual":           {Label: "Subscribed", Color: "#9CA3AF", Description: "You subscribed to the thread (via an Issue or Pull Request)"},
	"mention":          {Label: "Mentioned", Color: "#A78BFA", Description: "You were specifically @mentioned in the content"},
	"review_requested": {Label: "Review requested", Color: "#FB923C", Description: "You were requested to review a Pull Request"},
	"security_alert":   {Label: "Security alert", Color: "#F87171", Description: "GitHub discovered a security vulnerability in your repository"},
	"state_change":     {Label: "State changed", Color: "#10B981", Description: "You changed the thread state (for example, closing an Issue or merging a Pull Request)"},
	"subscribed":       {Label: "Watching", Color: "#9CA3AF", Description: "You're watching the repository"},
	"team_mention":     {Label: "Team mentioned", Color: "#A78BFA", Description: "You were on a team that was mentioned"},
}

var actionMetadata = map[string]Metadata{
	"added":        {Label: "Added"},
	"commented":    {Label: "Commented"},
	"created":      {Label: "Created"},
	"deleted":      {Label: "Deleted"},
	"forked":       {Label: "Forked"},
	"member_added": {Label: "Collaborator added"},
	"made_public":  {Label: "Made public"},
	"pushed":       {Label: "Pushed"},
	"released":     {Label: "Released"},
	"reviewed":     {Label: "Reviewed"},
	"starred":      {Label: "Starred"},
	"updated":      {Label: "Updated"},
}

// SubjectTypeMetadata is the Lookup for subject types.
func SubjectTypeMetadata(value string) Metadata {
	return lookup(subjectTypeMetadata, value)
}

// ReasonMetadata is the Lookup for notification reasons.
func ReasonMetadata(value string) Metadata {
	return lookup(reasonMetadata, value)
}

// ActionMetadata is the Lookup for event actions.
func ActionMetadata(value string) Metadata {
	return lookup(actionMetadata, value)
}

func lookup(table map[string]Metadata, value string) Metadata {
	if m, ok := table[value]; ok {
		return m
	}
	return Metadata{Label: humanize(value)}
}

// humanize turns "review_requested" into "Review requested".
func humanize(value string) string {
	s := strings.ReplaceAll(value, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
