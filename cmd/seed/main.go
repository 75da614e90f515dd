// seed genera el script SQL con el usuario administrador inicial.
// El hash bcrypt se calcula en el momento, nunca se versiona una contraseña.
//
// Uso: go run ./cmd/seed <password> [username]
// Por defecto el username es "admin".
// Escribe: internal/infrastructure/postgres/migrations/002_seed_admin.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const outPath = "internal/infrastructure/postgres/migrations/002_seed_admin.sql"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: go run ./cmd/seed <password> [username]")
		os.Exit(1)
	}
	password := os.Args[1]
	username := "admin"
	if len(os.Args) > 2 {
		username = os.Args[2]
	}
	if len(password) < 8 {
		fmt.Fprintln(os.Stderr, "la contraseña debe tener al menos 8 caracteres")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar hash: %v\n", err)
		os.Exit(1)
	}

	var sb strings.Builder
	sb.WriteString("-- Usuario administrador inicial. Generado por cmd/seed.\n")
	sb.WriteString("INSERT INTO users (id, username, password_hash, name, role, status, created_at, updated_at)\n")
	fmt.Fprintf(&sb, "VALUES ('%s', '%s', '%s', 'Administrador', 'admin', 'active', NOW(), NOW())\n",
		uuid.New().String(), sqlEscape(username), string(hash))
	sb.WriteString("ON CONFLICT (username) DO NOTHING;\n")

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "crear directorio: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, []byte(sb.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "escribir %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Seed escrito en %s (usuario %q)\n", outPath, username)
}

func sqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
