package client

// state.go the view-state machine. State is a value; Update is a pure
// function from (state, event) to the next state. The controller owns the
// current value and feeds it events.

// View is the screen currently shown.
type View string

const (
	ViewProfiles   View = "profiles"
	ViewAdminLogin View = "adminLogin"
	ViewMain       View = "main"
)

// Profile is the active content profile within the main view.
type Profile string

const (
	ProfileNone     Profile = ""
	ProfileResume   Profile = "Resume"
	ProfileProjects Profile = "Projects"
	ProfileAbout    Profile = "About"
	ProfileContact  Profile = "Contact"
)

// Selection is the item whose detail modal is open, or the add-project form
// when AddForm is set. A nil *Selection means no modal.
type Selection struct {
	Project *Project
	Resume  *ResumeEntry
	AddForm bool
}

// State is one immutable snapshot of the client. Alert is a one-shot
// blocking message; the view shows it and dispatches DismissAlert.
type State struct {
	View          View
	ActiveProfile Profile
	IsAdmin       bool
	Projects      []Project
	Resume        []ResumeEntry
	Selected      *Selection
	Alert         string
}

// NewState is the state on first load: the profile picker, nobody logged in.
func NewState() State {
	return State{View: ViewProfiles}
}

// Event is a user intent or a completed network response.
type Event interface{ isEvent() }

type (
	// ChooseProfile picks a profile card on the picker screen.
	ChooseProfile struct{ Profile Profile }
	// ChooseManage picks "Manage Profiles" on the picker screen.
	ChooseManage struct{}
	// LoginSucceeded and LoginFailed report the outcome of a login call.
	LoginSucceeded struct{}
	LoginFailed    struct{}
	// CancelLogin backs out of the login form.
	CancelLogin struct{}
	// ClickLogo returns to the picker. It does not log the admin out.
	ClickLogo struct{}
	// Logout drops admin rights but stays on the main view.
	Logout struct{}
	// SetActiveProfile switches profiles from the navbar inside main.
	SetActiveProfile struct{ Profile Profile }
	// DataLoaded replaces both content lists wholesale.
	DataLoaded struct {
		Projects []Project
		Resume   []ResumeEntry
	}
	// SelectProject and SelectResumeEntry open an item's detail modal.
	SelectProject     struct{ Project Project }
	SelectResumeEntry struct{ Entry ResumeEntry }
	// ShowAddForm opens the add-project form.
	ShowAddForm struct{}
	// CloseModal closes whatever modal is open.
	CloseModal struct{}
	// DismissAlert clears the blocking alert.
	DismissAlert struct{}
)

func (ChooseProfile) isEvent()     {}
func (ChooseManage) isEvent()      {}
func (LoginSucceeded) isEvent()    {}
func (LoginFailed) isEvent()       {}
func (CancelLogin) isEvent()       {}
func (ClickLogo) isEvent()         {}
func (Logout) isEvent()            {}
func (SetActiveProfile) isEvent()  {}
func (DataLoaded) isEvent()        {}
func (SelectProject) isEvent()     {}
func (SelectResumeEntry) isEvent() {}
func (ShowAddForm) isEvent()       {}
func (CloseModal) isEvent()        {}
func (DismissAlert) isEvent()      {}

// Update applies one event to the state and returns the next state. Events
// that make no sense in the current view leave the state unchanged.
func Update(s State, e Event) State {
	switch e := e.(type) {
	case ChooseProfile:
		if s.View != ViewProfiles {
			return s
		}
		s.View = ViewMain
		s.ActiveProfile = e.Profile

	case ChooseManage:
		if s.View != ViewProfiles {
			return s
		}
		// An admin who never logged out skips the form.
		if s.IsAdmin {
			s.View = ViewMain
		} else {
			s.View = ViewAdminLogin
		}

	case LoginSucceeded:
		if s.View != ViewAdminLogin {
			return s
		}
		s.View = ViewMain
		s.IsAdmin = true

	case LoginFailed:
		if s.View != ViewAdminLogin {
			return s
		}
		s.Alert = "Wrong password"

	case CancelLogin:
		if s.View != ViewAdminLogin {
			return s
		}
		s.View = ViewProfiles

	case ClickLogo:
		if s.View != ViewMain {
			return s
		}
		s.View = ViewProfiles

	case Logout:
		s.IsAdmin = false

	case SetActiveProfile:
		if s.View != ViewMain {
			return s
		}
		s.ActiveProfile = e.Profile

	case DataLoaded:
		s.Projects = e.Projects
		s.Resume = e.Resume

	case SelectProject:
		p := e.Project
		s.Selected = &Selection{Project: &p}

	case SelectResumeEntry:
		entry := e.Entry
		s.Selected = &Selection{Resume: &entry}

	case ShowAddForm:
		s.Selected = &Selection{AddForm: true}

	case CloseModal:
		s.Selected = nil

	case DismissAlert:
		s.Alert = ""
	}
	return s
}
