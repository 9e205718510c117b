package cli

import (
	"errors"
	"sync"

	"github.com/dmitrijs2005/photocards/internal/client/models"
	"github.com/dmitrijs2005/photocards/internal/client/session"
	"github.com/dmitrijs2005/photocards/internal/client/views"
)

var ErrUnknownScreen = errors.New("unknown screen")

// Screen names a place the user can navigate to.
type Screen string

const (
	ScreenListings   Screen = "listings"
	ScreenAddListing Screen = "addlisting"
	ScreenCart       Screen = "cart"
	ScreenWishlist   Screen = "wishlist"
	ScreenComments   Screen = "comments"
	ScreenProfile    Screen = "profile"
	ScreenLogin      Screen = "login"
	ScreenRegister   Screen = "register"
)

var screens = map[Screen]bool{
	ScreenListings:   false,
	ScreenAddListing: true,
	ScreenCart:       true,
	ScreenWishlist:   true,
	ScreenComments:   true,
	ScreenProfile:    true,
	ScreenLogin:      false,
	ScreenRegister:   false,
}

// RequiresSession reports whether s is only reachable when signed in.
func RequiresSession(s Screen) bool {
	return screens[s]
}

// Mounter is a view controller with a mount lifecycle.
type Mounter interface {
	Mount()
	Unmount()
}

// Navigator tracks the current screen and keeps exactly that screen's
// controller mounted.
type Navigator struct {
	sessions views.Sessions

	mu      sync.Mutex
	views   map[Screen]Mounter
	current Screen
}

func NewNavigator(sessions views.Sessions) *Navigator {
	return &Navigator{sessions: sessions, views: make(map[Screen]Mounter)}
}

// Bind attaches the controller shown on s. Screens without a bound
// controller are plain prompts.
func (n *Navigator) Bind(s Screen, v Mounter) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.views[s] = v
}

func (n *Navigator) Current() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Go switches to s, unmounting the previous controller and mounting the new
// one. A screen that needs a session lands on ScreenLogin instead and
// session.ErrNotSignedIn is returned with it.
func (n *Navigator) Go(s Screen) (Screen, error) {
	if _, ok := screens[s]; !ok {
		return n.Current(), ErrUnknownScreen
	}

	target := s
	if RequiresSession(s) {
		if _, ok := n.sessions.CurrentUser(); !ok {
			target = ScreenLogin
		}
	}

	n.mu.Lock()
	prev := n.views[n.current]
	next := n.views[target]
	n.current = target
	n.mu.Unlock()

	if prev != nil {
		prev.Unmount()
	}
	if next != nil {
		next.Mount()
	}

	if target != s {
		return target, session.ErrNotSignedIn
	}
	return target, nil
}

// OnSession is a session.Listener. Signing out while on a protected screen
// moves the user back to the listings.
func (n *Navigator) OnSession(_ models.User, signedIn bool) {
	if signedIn || !RequiresSession(n.Current()) {
		return
	}
	_, _ = n.Go(ScreenListings)
}
