// Package mocks provides generated mocks for the core repository interfaces.
//
// Mocks are generated with go.uber.org/mock (gomock) and committed. To
// regenerate after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/casernelab/firequiz/internal/core UserRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=remember_token_repository_mock.go github.com/casernelab/firequiz/internal/core RememberTokenRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=quiz_repository_mock.go github.com/casernelab/firequiz/internal/core QuizRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=question_repository_mock.go github.com/casernelab/firequiz/internal/core QuestionRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=game_session_repository_mock.go github.com/casernelab/firequiz/internal/core GameSessionRepository
