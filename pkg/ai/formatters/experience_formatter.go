package formatters

const experienceInstructions = `The text is "<position> at <company>: <description>". Rewrite ONLY the description as a concise
40-240 character paragraph describing the role and its impact. Do not repeat the position or company.`

const educationInstructions = `The text is "<degree> in <field> from <institution>". Return one sentence (max 210 characters)
highlighting academic achievement for this degree. Do not invent honors or grades.`

const skillsInstructions = `The text is a comma-separated list of "skill (level)". Return one sentence (max 210 characters)
summarizing the skill set and depth. Keep every skill name as written.`
