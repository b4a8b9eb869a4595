// Package store persists dashboard columns in a YAML file and applies the
// edits made in options panels.
//
// The file looks like:
//
//	columns:
//	  - id: 3fa2c1d0
//	    type: notifications
//	    filters:
//	      unread: true
//	      subject_types:
//	        Issue: true
//	        PullRequest: true
//
// [Store] implements panel.Mutations. Mutation failures are logged rather
// than returned, since panels never inspect a result; the error-returning
// methods ([Store.UpdateFilters], [Store.Move], [Store.Remove]) are available
// to callers that care. [Watcher] reloads the file when it changes on disk.
package store
