package teacher

import "time"

// Editor holds one Teacher and an edit projection over it. Entering edit mode
// snapshots the current value; edits merge immutably into a working copy and
// Cancel restores the snapshot exactly, so unsaved edits never leak into the
// read view.
type Editor struct {
	current  Teacher
	snapshot Teacher
	editing  bool
}

func NewEditor(t Teacher) *Editor {
	return &Editor{current: t.clone()}
}

// Teacher returns the read projection: the working copy while editing, the
// held value otherwise.
func (e *Editor) Teacher() Teacher { return e.current.clone() }

func (e *Editor) Editing() bool { return e.editing }

// Begin enters edit mode, snapshotting the pre-edit value.
func (e *Editor) Begin() {
	if e.editing {
		return
	}
	e.snapshot = e.current.clone()
	e.editing = true
}

// Apply merges the set fields of the patch into the working copy. The merge
// produces a whole new value; a half-applied patch is never observable.
func (e *Editor) Apply(patch UpdateTeacher) {
	if !e.editing {
		return
	}
	merged := e.current.clone()
	if patch.FullName != "" {
		merged.FullName = patch.FullName
	}
	if patch.Email != "" {
		merged.Email = patch.Email
	}
	if patch.PhoneNumber != "" {
		merged.PhoneNumber = patch.PhoneNumber
	}
	if patch.Role != "" {
		merged.Role = patch.Role
	}
	if patch.DateOfBirth != nil {
		merged.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Address != "" {
		merged.Address = patch.Address
	}
	if patch.HighestQualification != "" {
		merged.HighestQualification = patch.HighestQualification
	}
	if patch.Salary != nil {
		merged.Salary = *patch.Salary
	}
	if patch.SalaryType != nil {
		merged.SalaryType = *patch.SalaryType
	}
	if patch.Status != nil {
		merged.Status = *patch.Status
	}
	e.current = merged
}

// Cancel leaves edit mode discarding unsaved edits.
func (e *Editor) Cancel() {
	if !e.editing {
		return
	}
	e.current = e.snapshot.clone()
	e.editing = false
}

// Commit leaves edit mode keeping the edits and returns the merged value.
func (e *Editor) Commit() Teacher {
	if e.editing {
		e.current.UpdatedAt = time.Now().UTC()
		e.editing = false
	}
	return e.current.clone()
}
