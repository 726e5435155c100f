// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibeqa/auth-service/models"
)

func Test_buildCreateUserQuery_SQLContainsParts(t *testing.T) {
	user := models.User{
		Email:        "a@x.com",
		PasswordHash: "$2a$12$digest",
		Name:         "A",
	}

	query, args, err := buildCreateUserQuery(user)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 3)
	require.Equal(t, user.Email, args[0])
	require.Equal(t, user.PasswordHash, args[1])
	require.Equal(t, user.Name, args[2])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "email")
	require.Contains(t, q, "password_hash")
	require.Contains(t, q, "name")
	require.Contains(t, q, "returning")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildFindUserByEmailQuery(t *testing.T) {
	query, args, err := buildFindUserByEmailQuery("a@x.com")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "a@x.com", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "where")
	require.Contains(t, q, "email")
	require.Contains(t, query, "$1")

	// columns presence (subset / key columns)
	for _, col := range userColumns {
		assert.Contains(t, q, col)
	}
}

func Test_buildFindUserByIDQuery(t *testing.T) {
	query, args, err := buildFindUserByIDQuery(42)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(42), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from users")
	require.Contains(t, q, "id")
	require.Contains(t, query, "$1")
}

func Test_buildUpdateUserNameQuery(t *testing.T) {
	query, args, err := buildUpdateUserNameQuery(42, "New Name")
	require.NoError(t, err)

	// name and id; updated_at is a SQL expression, not an argument
	require.Len(t, args, 2)
	require.Equal(t, "New Name", args[0])
	require.Equal(t, int64(42), args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "update users")
	require.Contains(t, q, "set name")
	require.Contains(t, q, "updated_at = now()")
	require.Contains(t, q, "returning")
}
