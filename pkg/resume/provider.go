package resume

import (
	"context"
	"fmt"
	"strings"
)

// Provider holds the resume loaded at startup and its rendered prompt context.
// It is immutable after construction and safe for concurrent use.
type Provider struct {
	resume  Resume
	context string
}

// NewProvider loads the resume once. A load failure is returned as is so the
// caller can abort startup.
func NewProvider(ctx context.Context, store Store) (*Provider, error) {
	r, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Provider{resume: r, context: Render(r)}, nil
}

// Context returns the complete rendered resume.
func (p *Provider) Context() string { return p.context }

func (p *Provider) FullName() string { return p.resume.Profile.FullName }

func (p *Provider) Resume() Resume { return p.resume }

// Render flattens r into labeled sections in a fixed order.
func Render(r Resume) string {
	var b strings.Builder
	join := func(items []string) string { return strings.Join(items, ", ") }

	fmt.Fprintf(&b, "COMPLETE RESUME DATA FOR %s:\n\n", strings.ToUpper(r.Profile.FullName))

	b.WriteString("PROFILE:\n")
	fmt.Fprintf(&b, "Name: %s\n", r.Profile.FullName)
	fmt.Fprintf(&b, "Current Titles: %s\n", join(r.Profile.CurrentTitles))
	fmt.Fprintf(&b, "Summary: %s\n", r.Profile.Summary)
	if loc := r.Profile.Location; loc != nil {
		fmt.Fprintf(&b, "Location: %s, %s, %s\n", loc.City, loc.State, loc.Country)
	}
	if c := r.Profile.Contact; c != nil {
		b.WriteString("Contact Information:\n")
		if c.Phone != "" {
			fmt.Fprintf(&b, "Phone: %s\n", c.Phone)
		}
		if c.Email != "" {
			fmt.Fprintf(&b, "Email: %s\n", c.Email)
		}
		if l := c.Links; l != nil {
			if l.LinkedIn != "" {
				fmt.Fprintf(&b, "LinkedIn: %s\n", l.LinkedIn)
			}
			if l.GitHub != "" {
				fmt.Fprintf(&b, "GitHub: %s\n", l.GitHub)
			}
			if l.Website != "" {
				fmt.Fprintf(&b, "Website: %s\n", l.Website)
			}
		}
	}
	b.WriteString("\n")

	b.WriteString("SKILLS:\n")
	fmt.Fprintf(&b, "Primary Skills: %s\n", join(r.Skills.Primary))
	fmt.Fprintf(&b, "Secondary Skills: %s\n", join(r.Skills.Secondary))
	fmt.Fprintf(&b, "Domains: %s\n", join(r.Skills.Domains))
	fmt.Fprintf(&b, "Tools & Platforms: %s\n\n", join(r.Skills.ToolsPlatforms))

	b.WriteString("WORK EXPERIENCE:\n")
	for i, exp := range r.WorkHistory {
		fmt.Fprintf(&b, "%d. %s\n", i+1, exp.Company)
		if exp.Roles != nil {
			for _, role := range exp.Roles {
				fmt.Fprintf(&b, "   Role: %s\n", role.Title)
				fmt.Fprintf(&b, "   Duration: %s - %s\n", role.StartDate, role.EndDate)
				fmt.Fprintf(&b, "   Location: %s\n", role.Location)
				fmt.Fprintf(&b, "   Responsibilities: %s\n", join(role.Responsibilities))
			}
		} else {
			end := exp.EndDate
			if end == "" {
				end = "Present"
			}
			fmt.Fprintf(&b, "   Role: %s\n", exp.Role)
			fmt.Fprintf(&b, "   Duration: %s - %s\n", exp.StartDate, end)
			fmt.Fprintf(&b, "   Location: %s\n", exp.Location)
			if len(exp.Highlights) > 0 {
				fmt.Fprintf(&b, "   Highlights: %s\n", join(exp.Highlights))
			}
			if len(exp.TechStack) > 0 {
				fmt.Fprintf(&b, "   Tech Stack: %s\n", join(exp.TechStack))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("PROJECTS:\n")
	for i, p := range r.Projects {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.Name)
		fmt.Fprintf(&b, "   Organization: %s\n", p.Organization)
		fmt.Fprintf(&b, "   Domain: %s\n", p.Domain)
		fmt.Fprintf(&b, "   Type: %s\n", p.Type)
		fmt.Fprintf(&b, "   Tech Stack: %s\n", join(p.TechStack))
		fmt.Fprintf(&b, "   Features: %s\n", join(p.Features))
		if len(p.Contributions) > 0 {
			fmt.Fprintf(&b, "   Contributions: %s\n", join(p.Contributions))
		}
		fmt.Fprintf(&b, "   Location: %s\n", p.Location)
		fmt.Fprintf(&b, "   Period: %s\n\n", p.Period)
	}

	b.WriteString("EDUCATION:\n")
	for i, e := range r.Education {
		fmt.Fprintf(&b, "%d. %s in %s\n", i+1, e.Degree, e.Discipline)
		fmt.Fprintf(&b, "   Institution: %s\n", e.Institution)
		fmt.Fprintf(&b, "   Location: %s\n", e.Location)
		fmt.Fprintf(&b, "   Duration: %d - %d\n\n", e.StartYear, e.EndYear)
	}

	if len(r.Certifications) > 0 {
		fmt.Fprintf(&b, "CERTIFICATIONS:\n%s\n\n", join(r.Certifications))
	}
	if len(r.AwardsRecognition) > 0 {
		fmt.Fprintf(&b, "AWARDS & RECOGNITION:\n%s\n\n", join(r.AwardsRecognition))
	}
	if len(r.MostProudOf) > 0 {
		fmt.Fprintf(&b, "MOST PROUD OF:\n%s\n\n", join(r.MostProudOf))
	}

	return strings.TrimSpace(b.String())
}
