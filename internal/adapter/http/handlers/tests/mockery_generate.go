package tests

// Mock generation for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name IdentityService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename identity_service_mock.go --with-expecter
//go:generate mockery --name FocusService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename focus_service_mock.go --with-expecter
//go:generate mockery --name AdminService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename admin_service_mock.go --with-expecter
