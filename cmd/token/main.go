package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"leadgrid/config"
	"leadgrid/internal/domain/entity"
	"leadgrid/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// token issues an access token for an operator, signed with the configured secret.
func main() {
	userFlag := flag.String("user", "", "Operator ID (UUID); a new one is generated when empty")
	rolesFlag := flag.String("roles", string(entity.RoleOperator), "Comma-separated roles (operator, reviewer)")
	flag.Parse()

	token, err := issue(*userFlag, *rolesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}

func issue(user, rolesArg string) (string, error) {
	userID := uuid.New()
	if user != "" {
		parsed, err := uuid.Parse(user)
		if err != nil {
			return "", errors.Wrap(err, "invalid user id")
		}
		userID = parsed
	}

	var roles []string
	for _, role := range strings.Split(rolesArg, ",") {
		role = strings.TrimSpace(role)
		if role == "" {
			continue
		}
		if !entity.Role(role).IsValid() {
			return "", errors.Errorf("unknown role: %s", role)
		}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		return "", errors.New("at least one role is required")
	}

	cfg, err := config.New()
	if err != nil {
		return "", errors.Wrap(err, "failed to load config")
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return "", err
	}

	return tokenSvc.GenerateToken(userID, roles)
}
