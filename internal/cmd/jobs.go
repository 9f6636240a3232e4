package cmd

import (
	"fmt"
	"strings"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
)

type SearchCmd struct {
	Location string `help:"Exact location (postal/area code)."`
	Category string `help:"Exact category."`
	JobType  string `name:"job-type" help:"Exact job type."`
	Query    string `help:"Case-insensitive substring in title, company or description."`
}

func (c *SearchCmd) Run(ctx *Context) error {
	jobs := ctx.Services.Jobs.Search(&dto.JobFilters{
		Location: c.Location,
		Category: c.Category,
		JobType:  c.JobType,
		Search:   c.Query,
	})

	if len(jobs) == 0 {
		fmt.Fprintln(ctx.Out, "No jobs found.")
		return nil
	}
	for _, job := range jobs {
		printJobRow(ctx, job)
	}
	return nil
}

type JobCmd struct {
	Show   JobShowCmd   `cmd:"" help:"Show one job listing."`
	List   JobListCmd   `cmd:"" help:"List your own job listings (employer)."`
	Post   JobPostCmd   `cmd:"" help:"Post a new job listing (employer)."`
	Close  JobCloseCmd  `cmd:"" help:"Close a job listing (employer)."`
	Delete JobDeleteCmd `cmd:"" help:"Delete a job listing and its applications (employer)."`
}

type JobShowCmd struct {
	ID string `arg:"" help:"Job id."`
}

func (c *JobShowCmd) Run(ctx *Context) error {
	job, err := ctx.Services.Jobs.GetByID(c.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "%s at %s (%s)\n", job.Title, job.Company, job.Status)
	fmt.Fprintf(ctx.Out, "id:        %s\n", job.ID)
	fmt.Fprintf(ctx.Out, "location:  %s\n", job.Location)
	fmt.Fprintf(ctx.Out, "category:  %s\n", job.Category)
	fmt.Fprintf(ctx.Out, "type:      %s\n", job.JobType)
	fmt.Fprintf(ctx.Out, "salary:    %s\n", job.Salary)
	fmt.Fprintf(ctx.Out, "posted:    %s\n", job.PostedDate.Format("2006-01-02"))
	if len(job.Requirements) > 0 {
		fmt.Fprintf(ctx.Out, "requires:  %s\n", strings.Join(job.Requirements, ", "))
	}
	fmt.Fprintln(ctx.Out, job.Description)
	return nil
}

type JobListCmd struct{}

func (c *JobListCmd) Run(ctx *Context) error {
	actor := ctx.Services.Auth.CurrentActor()
	if actor == nil {
		fmt.Fprintln(ctx.Out, "Not signed in.")
		return nil
	}

	jobs := ctx.Services.Jobs.JobsForEmployer(actor.ID)
	if len(jobs) == 0 {
		fmt.Fprintln(ctx.Out, "No jobs posted.")
		return nil
	}
	for _, job := range jobs {
		printJobRow(ctx, job)
	}
	return nil
}

type JobPostCmd struct {
	Title        string   `required:"" help:"Job title."`
	Company      string   `required:"" help:"Company name."`
	Location     string   `required:"" help:"Postal/area code."`
	Description  string   `required:"" help:"Job description."`
	Requirements []string `help:"Requirement, repeatable."`
	Salary       string   `required:"" help:"Salary range."`
	JobType      string   `name:"job-type" required:"" help:"Job type (Full-time, Part-time, Contract)."`
	Category     string   `required:"" help:"Job category."`
}

func (c *JobPostCmd) Run(ctx *Context) error {
	actor := ctx.Services.Auth.CurrentActor()
	id, err := ctx.Services.Jobs.CreateJob(actor, &dto.CreateJobRequest{
		Title:        c.Title,
		Company:      c.Company,
		Location:     c.Location,
		Description:  c.Description,
		Requirements: c.Requirements,
		Salary:       c.Salary,
		JobType:      c.JobType,
		Category:     c.Category,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "Job listing created: %s\n", id)
	return nil
}

type JobCloseCmd struct {
	ID string `arg:"" help:"Job id."`
}

func (c *JobCloseCmd) Run(ctx *Context) error {
	actor := ctx.Services.Auth.CurrentActor()
	if err := ctx.Services.Jobs.CloseJob(actor, c.ID); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "Job %s closed.\n", c.ID)
	return nil
}

type JobDeleteCmd struct {
	ID string `arg:"" help:"Job id."`
}

func (c *JobDeleteCmd) Run(ctx *Context) error {
	actor := ctx.Services.Auth.CurrentActor()
	if err := ctx.Services.Jobs.DeleteJob(actor, c.ID); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "Job %s deleted along with its applications.\n", c.ID)
	return nil
}

func printJobRow(ctx *Context, job *models.Job) {
	fmt.Fprintf(ctx.Out, "%s\t%s\t%s\t%s\t%s\t%s\n",
		job.ID, job.Title, job.Company, job.Category, job.JobType, job.Status)
}
