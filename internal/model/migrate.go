package model

// MigrateAble lists every table in dependency order.
var MigrateAble = []any{
	&User{},
	&Candidate{},
	&CandidateSkill{},
	&Company{},
	&Opportunity{},
	&Application{},
	&PostingQuota{},
	&Submission{},
	&PolicyDecisionLog{},
}
