package cli

import (
	"context"
)

func (a *App) Profile(ctx context.Context) error {
	if err := a.open(ctx, ScreenProfile); err != nil {
		return err
	}
	u, ok := a.profile.User()
	if !ok {
		return nil
	}
	renderProfile(a.out, u)
	return nil
}

// ProfileEdit prompts for bio, address and profile picture, then saves
// them. After a failed save the next edit starts from the unsaved values.
func (a *App) ProfileEdit(ctx context.Context) error {
	if err := a.open(ctx, ScreenProfile); err != nil {
		return err
	}
	if !a.profile.Editing() {
		if err := a.profile.BeginEdit(); err != nil {
			return err
		}
	}

	draft := a.profile.Draft()
	var err error
	if draft.Bio, err = GetOptionalText(a.reader, "Bio", draft.Bio, a.out); err != nil {
		return err
	}
	if draft.Address, err = GetOptionalText(a.reader, "Address", draft.Address, a.out); err != nil {
		return err
	}
	if draft.ProfilePicture, err = GetOptionalText(a.reader, "Profile picture URL", draft.ProfilePicture, a.out); err != nil {
		return err
	}
	if err := a.profile.Stage(draft); err != nil {
		return err
	}

	if !Confirm(a.reader, "Save changes?", a.out) {
		a.profile.Cancel()
		a.println("Changes discarded.")
		return nil
	}

	u, err := a.profile.Save(ctx)
	if err != nil {
		a.println("Your changes were kept; run 'profile edit' to try again.")
		return err
	}

	a.println("Profile updated.")
	renderProfile(a.out, u)
	return nil
}
