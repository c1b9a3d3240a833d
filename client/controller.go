package client

// controller.go glues the API client to the state machine. Mutations call
// the API, then refetch both full lists; there is no optimistic update and
// no merge. Fetch failures are silent, the lists just stay as they were.
// Only a failed login surfaces to the user, via the blocking alert.

type Controller struct {
	api   *API
	state State
}

func NewController(api *API) *Controller {
	return &Controller{api: api, state: NewState()}
}

// State returns the current snapshot for the view to render.
func (c *Controller) State() State {
	return c.state
}

// Dispatch applies a pure view event, one with no network side effect.
func (c *Controller) Dispatch(e Event) {
	c.state = Update(c.state, e)
}

// Start runs the on-mount fetch of both content lists.
func (c *Controller) Start() {
	c.refresh()
}

func (c *Controller) refresh() {
	projects, err := c.api.FetchProjects()
	if err != nil {
		return
	}
	resume, err := c.api.FetchResume()
	if err != nil {
		return
	}
	c.Dispatch(DataLoaded{Projects: projects, Resume: resume})
}

// ChooseProfile enters the main view on the given profile and refetches.
func (c *Controller) ChooseProfile(p Profile) {
	c.Dispatch(ChooseProfile{Profile: p})
	c.refresh()
}

// Manage opens the admin login form (or main, for a still-logged-in admin).
func (c *Controller) Manage() {
	c.Dispatch(ChooseManage{})
}

// Login submits the password. The token that comes back is discarded; no
// later call sends it.
func (c *Controller) Login(password string) {
	if _, err := c.api.Login(password); err != nil {
		c.Dispatch(LoginFailed{})
		return
	}
	c.Dispatch(LoginSucceeded{})
	c.refresh()
}

// AddProject creates a project, then refetches both lists.
func (c *Controller) AddProject(p Project) {
	c.api.AddProject(p)
	c.refresh()
}

// DeleteProject removes a project, then refetches both lists.
func (c *Controller) DeleteProject(id uint) {
	c.api.DeleteProject(id)
	c.refresh()
}

// DeleteResumeEntry removes a resume entry, then refetches both lists.
func (c *Controller) DeleteResumeEntry(id uint) {
	c.api.DeleteResumeEntry(id)
	c.refresh()
}
