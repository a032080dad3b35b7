package formatters

const summaryInstructions = `Rewrite the professional summary below.
CRITICAL:
- aim for 150-300 characters, never more than 500
- keep the candidate's seniority and domain, do not invent employers or numbers
- first person implied, no pronouns, no buzzword lists`

const personalInfoInstructions = `The text is "<full name> - <email>". Return a one-line professional headline for this person.
Do NOT change the name or the email address.`

const genericInstructions = `Improve clarity, impact and professional tone of the text. Keep its meaning and length.`
