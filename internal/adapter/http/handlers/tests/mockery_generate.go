package tests

// Mock generation example for handler tests. The mocks in mocks_test.go are
// hand-written in the same shape mockery produces.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name DashboardService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename dashboard_service_mock.go --with-expecter
//go:generate mockery --name UserService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename user_service_mock.go --with-expecter
