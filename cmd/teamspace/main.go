// teamspace es un CLI de administración que opera contra la API HTTP.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	Token     string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	u := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, u, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func main() {
	var (
		baseURL = envOr("TEAMSPACE_URL", "http://localhost:8080")
		token   = envOr("TEAMSPACE_TOKEN", "")
		out     = envOr("TEAMSPACE_OUT", "text")
		timeout = 30 * time.Second
	)

	root := &cobra.Command{
		Use:   "teamspace",
		Short: "CLI admin para la API de teamspace",
	}

	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base de la API (env TEAMSPACE_URL)")
	root.PersistentFlags().StringVar(&token, "token", token, "Token de acceso Bearer (env TEAMSPACE_TOKEN)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")

	cl := &client{HTTP: &http.Client{Timeout: timeout}}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cl.BaseURL = baseURL
		cl.Token = token
		cl.OutFormat = out
	}

	// ─── login ───
	var loginEmail, loginPassword string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Login con email/password; imprime el access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, _ := json.Marshal(map[string]string{"email": loginEmail, "password": loginPassword})
			status, resp, err := cl.do("POST", "/v1/auth/login", body)
			if err != nil {
				return err
			}
			if status != http.StatusOK {
				return fmt.Errorf("login fallo: status=%d body=%s", status, string(resp))
			}
			var parsed struct {
				AccessToken string `json:"access_token"`
			}
			if err := json.Unmarshal(resp, &parsed); err != nil {
				return err
			}
			fmt.Println(parsed.AccessToken)
			return nil
		},
	}
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email del usuario")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password del usuario")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	root.AddCommand(loginCmd)

	// ─── ping ───
	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "Chequea readiness del servicio",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", "/readyz", nil)
			if err != nil {
				return err
			}
			if status != http.StatusOK {
				return fmt.Errorf("not ready: status=%d body=%s", status, string(body))
			}
			if cl.OutFormat == "text" {
				fmt.Println("ok")
				return nil
			}
			cl.print(status, body)
			return nil
		},
	}
	root.AddCommand(pingCmd)

	// ─── workspaces ───
	wsCmd := &cobra.Command{Use: "workspaces", Short: "Operaciones sobre workspaces"}

	var wsTitle, wsPlan string
	var wsPage, wsPerPage int
	wsListCmd := &cobra.Command{
		Use:   "list",
		Short: "Lista workspaces con filtros",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if wsTitle != "" {
				q.Set("title", wsTitle)
			}
			if wsPlan != "" {
				q.Set("plan_type", wsPlan)
			}
			if wsPage > 0 {
				q.Set("page", fmt.Sprint(wsPage))
			}
			if wsPerPage > 0 {
				q.Set("per_page", fmt.Sprint(wsPerPage))
			}
			status, body, err := cl.do("GET", "/v1/workspaces?"+q.Encode(), nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	wsListCmd.Flags().StringVar(&wsTitle, "title", "", "Filtro substring por título")
	wsListCmd.Flags().StringVar(&wsPlan, "plan", "", "Filtro por plan (free|basic|pro|enterprise)")
	wsListCmd.Flags().IntVar(&wsPage, "page", 0, "Página")
	wsListCmd.Flags().IntVar(&wsPerPage, "per-page", 0, "Items por página")
	wsCmd.AddCommand(wsListCmd)

	var wsCreateTitle, wsCreatePlan, wsCreateDesc string
	wsCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Crea un workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{"title": wsCreateTitle}
			if wsCreatePlan != "" {
				payload["plan_type"] = wsCreatePlan
			}
			if wsCreateDesc != "" {
				payload["description"] = wsCreateDesc
			}
			body, _ := json.Marshal(payload)
			status, resp, err := cl.do("POST", "/v1/workspaces", body)
			if err != nil {
				return err
			}
			cl.print(status, resp)
			return nil
		},
	}
	wsCreateCmd.Flags().StringVar(&wsCreateTitle, "title", "", "Título del workspace")
	wsCreateCmd.Flags().StringVar(&wsCreatePlan, "plan", "", "Plan (free|basic|pro|enterprise)")
	wsCreateCmd.Flags().StringVar(&wsCreateDesc, "description", "", "Descripción")
	_ = wsCreateCmd.MarkFlagRequired("title")
	wsCmd.AddCommand(wsCreateCmd)

	var wsDeleteForce bool
	wsDeleteCmd := &cobra.Command{
		Use:   "delete <workspace-id>",
		Short: "Elimina un workspace (--force para workspaces completados)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/v1/workspaces/" + url.PathEscape(args[0])
			if wsDeleteForce {
				path += "?force=true"
			}
			status, body, err := cl.do("DELETE", path, nil)
			if err != nil {
				return err
			}
			if status != http.StatusNoContent {
				return fmt.Errorf("delete fallo: status=%d body=%s", status, string(body))
			}
			fmt.Println("deleted")
			return nil
		},
	}
	wsDeleteCmd.Flags().BoolVar(&wsDeleteForce, "force", false, "Forzar borrado de workspace completado")
	wsCmd.AddCommand(wsDeleteCmd)
	root.AddCommand(wsCmd)

	// ─── teams ───
	teamsCmd := &cobra.Command{Use: "teams", Short: "Operaciones sobre teams"}

	var teamWorkspaceID string
	teamListCmd := &cobra.Command{
		Use:   "list",
		Short: "Lista teams, opcionalmente por workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/v1/teams"
			if teamWorkspaceID != "" {
				path = "/v1/teams/workspace/" + url.PathEscape(teamWorkspaceID)
			}
			status, body, err := cl.do("GET", path, nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	teamListCmd.Flags().StringVar(&teamWorkspaceID, "workspace", "", "Limitar a un workspace")
	teamsCmd.AddCommand(teamListCmd)

	teamMembersCmd := &cobra.Command{
		Use:   "members <team-id>",
		Short: "Lista los miembros de un team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", "/v1/teams/"+url.PathEscape(args[0])+"/members", nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	teamsCmd.AddCommand(teamMembersCmd)
	root.AddCommand(teamsCmd)

	// ─── users ───
	usersCmd := &cobra.Command{Use: "users", Short: "Operaciones sobre usuarios"}

	var userEmail string
	userListCmd := &cobra.Command{
		Use:   "list",
		Short: "Lista usuarios con filtro por email",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if userEmail != "" {
				q.Set("email", userEmail)
			}
			status, body, err := cl.do("GET", "/v1/users?"+q.Encode(), nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	userListCmd.Flags().StringVar(&userEmail, "email", "", "Filtro substring por email")
	usersCmd.AddCommand(userListCmd)
	root.AddCommand(usersCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
