package panel

import "github.com/Iron-Ham/hubdeck/internal/tristate"

// Mutations receives the edits made in a panel. Calls are fire-and-forget:
// the panel never inspects a result and never retries.
type Mutations interface {
	SetParticipating(columnID string, v tristate.Bool)
	SetSaved(columnID string, v tristate.Bool)
	SetUnread(columnID string, v tristate.Bool)
	SetPrivacy(columnID string, v tristate.Bool)
	SetSubjectType(columnID, key string, v tristate.Bool)
	SetNotificationReason(columnID, key string, v tristate.Bool)
	SetActivityAction(columnID, key string, v tristate.Bool)
	MoveColumn(columnID string, index int)
	DeleteColumn(columnID string)
}

// MutationFuncs adapts plain functions to Mutations. Nil fields are skipped.
type MutationFuncs struct {
	Participating      func(columnID string, v tristate.Bool)
	Saved              func(columnID string, v tristate.Bool)
	Unread             func(columnID string, v tristate.Bool)
	Privacy            func(columnID string, v tristate.Bool)
	SubjectType        func(columnID, key string, v tristate.Bool)
	NotificationReason func(columnID, key string, v tristate.Bool)
	ActivityAction     func(columnID, key string, v tristate.Bool)
	Move               func(columnID string, index int)
	Delete             func(columnID string)
}

var _ Mutations = MutationFuncs{}

func (f MutationFuncs) SetParticipating(columnID string, v tristate.Bool) {
	if f.Participating != nil {
		f.Participating(columnID, v)
	}
}

func (f MutationFuncs) SetSaved(columnID string, v tristate.Bool) {
	if f.Saved != nil {
		f.Saved(columnID, v)
	}
}

func (f MutationFuncs) SetUnread(columnID string, v tristate.Bool) {
	if f.Unread != nil {
		f.Unread(columnID, v)
	}
}

func (f MutationFuncs) SetPrivacy(columnID string, v tristate.Bool) {
	if f.Privacy != nil {
		f.Privacy(columnID, v)
	}
}

func (f MutationFuncs) SetSubjectType(columnID, key string, v tristate.Bool) {
	if f.SubjectType != nil {
		f.SubjectType(columnID, key, v)
	}
}

func (f MutationFuncs) SetNotificationReason(columnID, key string, v tristate.Bool) {
	if f.NotificationReason != nil {
		f.NotificationReason(columnID, key, v)
	}
}

func (f MutationFuncs) SetActivityAction(columnID, key string, v tristate.Bool) {
	if f.ActivityAction != nil {
		f.ActivityAction(columnID, key, v)
	}
}

func (f MutationFuncs) MoveColumn(columnID string, index int) {
	if f.Move != nil {
		f.Move(columnID, index)
	}
}

func (f MutationFuncs) DeleteColumn(columnID string) {
	if f.Delete != nil {
		f.Delete(columnID)
	}
}
