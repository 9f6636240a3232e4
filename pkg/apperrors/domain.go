package apperrors

/*
Предопределенные доменные ошибки. Сервисы возвращают их напрямую
или через Wrap поверх sentinel-ошибок репозиториев.
*/

// --- Auth ---

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
)

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
)

// ErrInvalidUserRole - роль не предусмотрена системой.
var ErrInvalidUserRole = New(
	CodeValidationFailed,
	"auth",
	"Invalid user role",
)

// ErrPermissionDenied - роль актора не дает права на операцию.
var ErrPermissionDenied = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions for this operation",
)

// --- Jobs ---

// ErrJobNotFound - вакансия не найдена.
var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
)

// ErrJobNotOwned - вакансия принадлежит другому работодателю.
// Не то же самое, что ErrPermissionDenied: роль актора подходит,
// но вакансия чужая.
var ErrJobNotOwned = New(
	CodeForbidden,
	"job",
	"Job is owned by another employer",
)

// ErrInvalidJobStatus - недопустимое значение статуса вакансии.
var ErrInvalidJobStatus = New(
	CodeInvalidStatus,
	"job",
	"Invalid job status",
)

// --- Applications ---

// ErrApplicationNotFound - отклик не найден.
var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
)

// ErrAlreadyApplied - соискатель уже откликался на эту вакансию.
var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this job",
)

// ErrInvalidApplicationStatus - недопустимое значение статуса отклика.
var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Invalid application status",
)
