package email

const (
	subjectSubmissionReceivedFmt = "Danke für deinen Vorschlag: %s"
	subjectLocationApprovedFmt   = "%s ist jetzt auf der Karte"
	subjectLocationRejectedFmt   = "Dein Vorschlag %s konnte nicht übernommen werden"
	subjectAdminNewSubmission    = "Neuer Karteneintrag wartet auf Freigabe"
)
