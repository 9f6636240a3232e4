package cmd

// CLI - дерево команд. Команды - тонкая обертка презентационного слоя:
// читают актора из сессии, вызывают сервисы и печатают результат.
type CLI struct {
	Verbose bool `help:"Enable debug logging."`

	Register RegisterCmd `cmd:"" help:"Register a new account and sign in."`
	Login    LoginCmd    `cmd:"" help:"Sign in with email and password."`
	Logout   LogoutCmd   `cmd:"" help:"Sign out."`
	Whoami   WhoamiCmd   `cmd:"" help:"Show the current session."`
	Location LocationCmd `cmd:"" help:"Update your location."`

	Search SearchCmd `cmd:"" help:"Search job listings."`
	Job    JobCmd    `cmd:"" help:"Manage job listings (employer)."`

	Apply        ApplyCmd        `cmd:"" help:"Apply to a job (seeker)."`
	Applications ApplicationsCmd `cmd:"" help:"List your applications (seeker)."`
	Applicants   ApplicantsCmd   `cmd:"" help:"List applicants for a job."`
	Review       ReviewCmd       `cmd:"" help:"Update an application status (employer)."`

	Stats StatsCmd `cmd:"" help:"Show aggregate statistics (admin)."`
}

func NewCLI() *CLI {
	return &CLI{}
}
