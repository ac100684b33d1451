package resume

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akunal1/smart-resume-backend/pkg/apperr"
)

const wantContext = `COMPLETE RESUME DATA FOR JANE DOE:

PROFILE:
Name: Jane Doe
Current Titles: Software Engineer, Architect
Summary: Builds backend systems.
Location: Pune, MH, India
Contact Information:
Email: jane@example.com
GitHub: https://github.com/janedoe

SKILLS:
Primary Skills: Go, TypeScript
Secondary Skills: Kafka
Domains: Fintech
Tools & Platforms: Docker, AWS

WORK EXPERIENCE:
1. Acme
   Role: Lead Developer
   Duration: 2021-01 - Present
   Location: Remote
   Highlights: Led team of 5
   Tech Stack: Go

2. Globex
   Role: Engineer
   Duration: 2018-01 - 2020-12
   Location: Pune
   Responsibilities: APIs, Testing

PROJECTS:
1. Ledger
   Organization: Acme
   Domain: Payments
   Type: Web
   Tech Stack: Go, Postgres
   Features: Reconciliation
   Location: Remote
   Period: 2022

EDUCATION:
1. B.Tech in Computer Science
   Institution: State University
   Location: Pune
   Duration: 2014 - 2018

CERTIFICATIONS:
CKA

MOST PROUD OF:
Shipping Ledger`

func TestProvider_Context(t *testing.T) {
	p, err := NewProvider(context.Background(), NewFileStore("testdata/resume.json"))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", p.FullName())
	assert.Equal(t, wantContext, p.Context())
	assert.Equal(t, p.Context(), p.Context())
}

func TestFileStore_Missing(t *testing.T) {
	_, err := NewProvider(context.Background(), NewFileStore(filepath.Join(t.TempDir(), "nope.json")))

	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeDataLoad))
}

func TestFileStore_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"profile":`), 0o600))

	_, err := NewFileStore(path).Load(context.Background())

	assert.True(t, apperr.HasCode(err, apperr.CodeDataLoad))
}

func TestFileStore_EmptyName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"profile":{"summary":"x"}}`), 0o600))

	_, err := NewFileStore(path).Load(context.Background())

	assert.True(t, apperr.HasCode(err, apperr.CodeDataLoad))
}

func TestRender_MinimalRecord(t *testing.T) {
	got := Render(Resume{Profile: Profile{FullName: "A B"}})

	assert.Contains(t, got, "COMPLETE RESUME DATA FOR A B:")
	assert.NotContains(t, got, "Contact Information")
	assert.NotContains(t, got, "CERTIFICATIONS")
	assert.Regexp(t, `EDUCATION:$`, got)
}

func TestRender_EmptyRolesListRendersNoRole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "profile": {"full_name": "A B"},
  "work_history": [
    {"company": "Grouped Co", "role": "Ignored", "roles": []},
    {"company": "Flat Co", "role": "Engineer", "start_date": "2020"}
  ]
}`), 0o600))

	r, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	got := Render(r)

	assert.Contains(t, got, "1. Grouped Co\n\n2. Flat Co\n   Role: Engineer\n   Duration: 2020 - Present")
	assert.NotContains(t, got, "Ignored")
}
