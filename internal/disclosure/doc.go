// Package disclosure tracks which categories of an options panel are
// expanded.
//
// A State behaves like an accordion until the user expands everything:
//
//	s := disclosure.New(category.Applicable(column.TypeActivity), disclosure.Options{})
//	s = s.Toggle(category.Unread)       // {unread}
//	s = s.Toggle(category.SubjectTypes) // {subject_types}
//	s = s.ExpandAll()                   // every applicable category
//	s = s.Toggle(category.Unread)       // {subject_types}
//
// Once the open set becomes empty, exclusive mode is re-armed. States are
// values; every transition returns a new State and leaves the receiver
// untouched.
package disclosure
