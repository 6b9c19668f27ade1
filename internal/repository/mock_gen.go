// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -typed -source=./profile.go -destination=../mocks/mock_profile_repository.go -package=mocks CandidateRepositoryIface,CompanyRepositoryIface
//go:generate mockgen -typed -source=./opportunity.go -destination=../mocks/mock_opportunity_repository.go -package=mocks OpportunityRepositoryIface
//go:generate mockgen -typed -source=./application.go -destination=../mocks/mock_application_repository.go -package=mocks ApplicationRepositoryIface
//go:generate mockgen -typed -source=./submission.go -destination=../mocks/mock_submission_repository.go -package=mocks SubmissionRepositoryIface
//go:generate mockgen -typed -source=./decision_log.go -destination=../mocks/mock_decision_log_repository.go -package=mocks DecisionLogRepositoryIface
