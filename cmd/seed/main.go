// seed crea datos de demo: un workspace, dos usuarios y un team.
// Pensado para entornos de desarrollo; es idempotente a nivel de email
// (si el usuario ya existe, lo reutiliza).
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/dropDatabas3/teamspace/internal/config"
	teamdto "github.com/dropDatabas3/teamspace/internal/http/dto/team"
	userdto "github.com/dropDatabas3/teamspace/internal/http/dto/user"
	wsdto "github.com/dropDatabas3/teamspace/internal/http/dto/workspace"
	teamsvc "github.com/dropDatabas3/teamspace/internal/http/services/teams"
	usersvc "github.com/dropDatabas3/teamspace/internal/http/services/users"
	wssvc "github.com/dropDatabas3/teamspace/internal/http/services/workspaces"
	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	"github.com/dropDatabas3/teamspace/internal/observability/logger"
	"github.com/dropDatabas3/teamspace/internal/store"

	_ "github.com/dropDatabas3/teamspace/internal/store/pg" // registra el adapter postgres
)

func main() {
	configPath := flag.String("config", "configs/config.example.yaml", "Path to YAML config")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	logger.Init(logger.Config{Env: cfg.App.Env, Level: "warn"})

	ctx := context.Background()
	conn, err := store.OpenAdapter(ctx, store.AdapterConfig{
		Name:         "postgres",
		DSN:          cfg.Storage.DSN,
		MaxOpenConns: cfg.Storage.Postgres.MaxOpenConns,
		MaxIdleConns: cfg.Storage.Postgres.MaxIdleConns,
	})
	if err != nil {
		log.Fatalf("storage connect: %v", err)
	}
	defer func() { _ = conn.Close() }()

	users := usersvc.New(usersvc.Deps{Users: conn.Users()})
	workspaces := wssvc.New(wssvc.Deps{Workspaces: conn.Workspaces(), Users: conn.Users()})
	teams := teamsvc.New(teamsvc.Deps{Teams: conn.Teams(), Workspaces: conn.Workspaces(), Users: conn.Users()})

	owner := ensureUser(ctx, users, conn.Users(), userdto.CreateUserRequest{
		Email:    "ana@example.com",
		Name:     "Ana Demo",
		Password: "demo-password",
	})
	member := ensureUser(ctx, users, conn.Users(), userdto.CreateUserRequest{
		Email:    "ben@example.com",
		Name:     "Ben Demo",
		Password: "demo-password",
	})

	ws, err := workspaces.Create(ctx, wsdto.CreateWorkspaceRequest{
		Title:       "Demo Workspace",
		Description: "Workspace de demo creado por el seeder",
		PlanType:    repository.PlanPro,
	})
	if err != nil {
		log.Fatalf("create workspace: %v", err)
	}
	if _, err := workspaces.AddMember(ctx, ws.ID, wsdto.AddMemberRequest{
		UserID: owner.ID,
		Role:   repository.WorkspaceRoleOwner,
	}); err != nil {
		log.Fatalf("add workspace owner: %v", err)
	}

	t, err := teams.Create(ctx, teamdto.CreateTeamRequest{
		WorkspaceID: ws.ID,
		OwnerID:     owner.ID,
		Name:        "Core Team",
		Description: "Team de demo",
	})
	if err != nil {
		log.Fatalf("create team: %v", err)
	}
	if _, err := teams.AddMember(ctx, t.ID, teamdto.AddMemberRequest{UserID: member.ID}); err != nil {
		log.Fatalf("add team member: %v", err)
	}

	log.Printf("seed ok: workspace=%s team=%s owner=%s member=%s", ws.ID, t.ID, owner.ID, member.ID)
}

func ensureUser(ctx context.Context, svc usersvc.Service, repo repository.UserRepository, in userdto.CreateUserRequest) *repository.User {
	u, err := svc.Create(ctx, in)
	if err == nil {
		return u
	}
	if repository.IsConflict(err) {
		u, gerr := repo.GetByEmail(ctx, in.Email)
		if gerr == nil {
			return u
		}
		log.Fatalf("get existing user %s: %v", in.Email, gerr)
	}
	log.Fatalf("create user %s: %v", in.Email, err)
	return nil
}
