package cmd

import (
	"fmt"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
)

type ApplyCmd struct {
	Job         string `required:"" help:"Job id."`
	CoverLetter string `name:"cover-letter" help:"Optional cover letter."`
}

func (c *ApplyCmd) Run(ctx *Context) error {
	actor := ctx.Services.Auth.CurrentActor()
	id, err := ctx.Services.Applications.ApplyToJob(actor, &dto.ApplyRequest{
		JobID:       c.Job,
		CoverLetter: c.CoverLetter,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "Application submitted: %s\n", id)
	return nil
}

type ApplicationsCmd struct{}

func (c *ApplicationsCmd) Run(ctx *Context) error {
	actor := ctx.Services.Auth.CurrentActor()
	if actor == nil {
		fmt.Fprintln(ctx.Out, "Not signed in.")
		return nil
	}

	apps := ctx.Services.Applications.ApplicationsForActor(actor.ID)
	if len(apps) == 0 {
		fmt.Fprintln(ctx.Out, "No applications.")
		return nil
	}
	for _, app := range apps {
		printApplicationRow(ctx, app)
	}

	summary := ctx.Services.Applications.SummaryForActor(actor.ID)
	fmt.Fprintf(ctx.Out, "total=%d", summary.Total)
	for status, n := range summary.ByStatus {
		fmt.Fprintf(ctx.Out, " %s=%d", status, n)
	}
	fmt.Fprintln(ctx.Out)
	return nil
}

type ApplicantsCmd struct {
	Job string `required:"" help:"Job id."`
}

func (c *ApplicantsCmd) Run(ctx *Context) error {
	apps := ctx.Services.Applications.ApplicationsForJob(c.Job)
	if len(apps) == 0 {
		fmt.Fprintln(ctx.Out, "No applications for this job.")
		return nil
	}
	for _, app := range apps {
		printApplicationRow(ctx, app)
	}
	return nil
}

type ReviewCmd struct {
	Application string `required:"" help:"Application id."`
	Status      string `required:"" enum:"applied,under_review,accepted,rejected" help:"New status."`
}

func (c *ReviewCmd) Run(ctx *Context) error {
	actor := ctx.Services.Auth.CurrentActor()
	err := ctx.Services.Applications.UpdateApplicationStatus(actor, c.Application,
		&dto.UpdateApplicationStatusRequest{Status: models.ApplicationStatus(c.Status)})
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "Application %s is now %s.\n", c.Application, c.Status)
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	actor := ctx.Services.Auth.CurrentActor()
	stats, err := ctx.Services.Jobs.StatsForAdmin(actor)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "jobs:         %d (%d active, %d closed)\n",
		stats.TotalJobs, stats.ActiveJobs, stats.ClosedJobs)
	fmt.Fprintf(ctx.Out, "applications: %d\n", stats.TotalApplications)
	fmt.Fprintf(ctx.Out, "users:        %d\n", stats.TotalUsers)
	for category, n := range stats.JobsByCategory {
		fmt.Fprintf(ctx.Out, "  %s: %d\n", category, n)
	}
	return nil
}

func printApplicationRow(ctx *Context, app *models.JobApplication) {
	fmt.Fprintf(ctx.Out, "%s\tjob=%s\tseeker=%s\t%s\t%s\n",
		app.ID, app.JobID, app.SeekerID, app.Status, app.AppliedDate.Format("2006-01-02"))
}
