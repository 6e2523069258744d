package router

import (
	"time"

	"github.com/lmhoang06/waiedu-task-management/internal/application"
	"github.com/lmhoang06/waiedu-task-management/internal/container"
	"github.com/lmhoang06/waiedu-task-management/internal/infrastructure/postgres"
	"github.com/lmhoang06/waiedu-task-management/internal/infrastructure/search"
	handlers "github.com/lmhoang06/waiedu-task-management/internal/interface/http"
	"github.com/lmhoang06/waiedu-task-management/internal/interface/middleware"
	"github.com/lmhoang06/waiedu-task-management/internal/router/modules"
)

// InitModules builds the repository/service/handler graph from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := postgres.NewUserRepository(pool)
	roles := postgres.NewRoleRepository(pool)
	tokens := postgres.NewTokenRepository(pool)
	resets := postgres.NewResetRepository(pool)
	teams := postgres.NewTeamRepository(pool)
	projects := postgres.NewProjectRepository(pool)
	tasks := postgres.NewTaskRepository(pool)
	comments := postgres.NewCommentRepository(pool)

	userIndex := search.NewUserIndex(container.GetES(), cfg.ESUsersIndex, logger)
	authz := application.NewEvaluator(roles, projects, tasks)

	authSvc := application.NewAuthService(users, tokens, container.GetJWT(), logger)
	resetSvc := application.NewResetService(resets, users, container.GetRabbitPub(), logger)
	userSvc := application.NewUserService(users, roles, authz, userIndex, container.GetGCS(), cfg.GCSBucket, logger)
	roleSvc := application.NewRoleService(roles, users, authz)
	teamSvc := application.NewTeamService(teams, users, authz)
	projectSvc := application.NewProjectService(projects, users, authz)
	taskSvc := application.NewTaskService(tasks, projects, users, authz)
	commentSvc := application.NewCommentService(comments, tasks, authz)

	authMW := middleware.Auth(authSvc)
	adminMW := middleware.AdminRequired(authz)
	// tight limiter on the credential endpoints, per IP per route
	credentialLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute,
		middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, resetSvc, logger), authMW, credentialLimiter))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), authMW))
	r.Add(modules.NewRoleModule(handlers.NewRoleHandler(roleSvc, logger), authMW))
	r.Add(modules.NewTeamModule(handlers.NewTeamHandler(teamSvc, logger), authMW))
	r.Add(modules.NewProjectModule(handlers.NewProjectHandler(projectSvc, logger), authMW))
	r.Add(modules.NewTaskModule(
		handlers.NewTaskHandler(taskSvc, logger),
		handlers.NewCommentHandler(commentSvc, logger),
		authMW,
	))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(resetSvc, logger), authMW, adminMW))
}
