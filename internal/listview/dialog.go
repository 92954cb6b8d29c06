package listview

import "context"

// ConfirmDialog is the single delete confirmation of a list page.
// Opening it again replaces the selected id; there is no queue.
type ConfirmDialog struct {
	open       bool
	selectedID int64
}

// Open selects id and shows the dialog.
func (d *ConfirmDialog) Open(id int64) {
	d.open = true
	d.selectedID = id
}

// Cancel closes the dialog without side effects.
func (d *ConfirmDialog) Cancel() {
	d.open = false
	d.selectedID = 0
}

func (d ConfirmDialog) IsOpen() bool { return d.open }

func (d ConfirmDialog) SelectedID() int64 { return d.selectedID }

// Confirm deletes the selected id and closes the dialog whatever the outcome.
// onSuccess only fires when del succeeds. The delete error is returned for logging.
func (d *ConfirmDialog) Confirm(ctx context.Context, del func(ctx context.Context, id int64) error, onSuccess func()) error {
	if !d.open || d.selectedID == 0 {
		d.Cancel()
		return nil
	}
	id := d.selectedID
	err := del(ctx, id)
	d.Cancel()
	if err != nil {
		return err
	}
	if onSuccess != nil {
		onSuccess()
	}
	return nil
}
