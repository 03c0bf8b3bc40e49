package email

import (
	"strings"
	"testing"
)

func TestRenderEmailTemplates(t *testing.T) {
	tests := []struct {
		template string
		data     any
		want     []string
	}{
		{
			template: "submission_received.html",
			data: submissionReceivedEmailData{
				baseEmailData: baseEmailData{Title: "Vorschlag erhalten", Heading: "Danke!"},
				LocationName:  "Die Auffüllerei",
			},
			want: []string{"Die Auffüllerei", "Danke!"},
		},
		{
			template: "location_approved.html",
			data: locationApprovedEmailData{
				baseEmailData: baseEmailData{
					Title:    "Eintrag freigegeben",
					Heading:  "Dein Ort ist auf der Karte",
					CTALabel: "Zur Karte",
					CTAURL:   "https://karte.example.de/karte",
				},
				LocationName: "gramm.genau",
			},
			want: []string{"gramm.genau", "https://karte.example.de/karte", "Zur Karte"},
		},
		{
			template: "location_rejected.html",
			data: locationRejectedEmailData{
				baseEmailData: baseEmailData{Title: "Vorschlag abgelehnt", Heading: "Schade"},
				LocationName:  "Testladen",
				Reason:        "Adresse nicht auffindbar",
			},
			want: []string{"Testladen", "Adresse nicht auffindbar"},
		},
		{
			template: "admin_new_submission.html",
			data: adminNewSubmissionEmailData{
				baseEmailData: baseEmailData{
					Title:    "Neuer Karteneintrag",
					Heading:  "Neuer Eintrag",
					CTALabel: "Zur Moderation",
					CTAURL:   "https://karte.example.de/admin/locations",
				},
				LocationName: "Unverpackt Bornheim",
				Category:     "unverpackt",
			},
			want: []string{"Unverpackt Bornheim", "unverpackt", "/admin/locations"},
		},
	}

	for _, tc := range tests {
		content, err := renderEmailTemplate(tc.template, tc.data)
		if err != nil {
			t.Fatalf("%s: render failed: %v", tc.template, err)
		}
		for _, needle := range tc.want {
			if !strings.Contains(content, needle) {
				t.Errorf("%s: rendered output missing %q", tc.template, needle)
			}
		}
	}
}
