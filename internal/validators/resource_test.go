// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-resource-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validPost() models.Post {
	return models.Post{UserID: 1, Title: "sunt aut facere", Body: "quia et suscipit"}
}

func validUser() models.User {
	return models.User{Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"}
}

// ---------------------------------------------------------------------------
// TestNewResourceValidator
// ---------------------------------------------------------------------------

func TestNewResourceValidator(t *testing.T) {
	v := NewResourceValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewResourceValidator()
	ctx := context.Background()

	post := validPost()
	user := validUser()
	fault := models.Fault{StatusCode: 503}

	assert.NoError(t, v.Validate(ctx, post))
	assert.NoError(t, v.Validate(ctx, &post))
	assert.NoError(t, v.Validate(ctx, user))
	assert.NoError(t, v.Validate(ctx, &user))
	assert.NoError(t, v.Validate(ctx, fault))
	assert.NoError(t, v.Validate(ctx, &fault))

	assert.ErrorIs(t, v.Validate(ctx, "post"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, nil), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewResourceValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, validPost(), "colour"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, validUser(), "colour"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.Fault{Drop: true}, "colour"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Post
// ---------------------------------------------------------------------------

func TestValidatePost(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*models.Post)
		fields  []string
		wantErr error
	}{
		{name: "valid defaults", modify: func(*models.Post) {}},
		{name: "zero user id", modify: func(p *models.Post) { p.UserID = 0 }, wantErr: ErrInvalidUserID},
		{name: "negative user id", modify: func(p *models.Post) { p.UserID = -3 }, wantErr: ErrInvalidUserID},
		{name: "blank title", modify: func(p *models.Post) { p.Title = "   " }, wantErr: ErrEmptyTitle},
		{name: "empty body is fine", modify: func(p *models.Post) { p.Body = "" }},
		{name: "new record with id", modify: func(p *models.Post) { p.ID = 5 }, fields: []string{FieldNewRecord}, wantErr: ErrIDMustBeEmpty},
		{name: "new record without id", modify: func(*models.Post) {}, fields: []string{FieldNewRecord}},
		{name: "missing id", modify: func(*models.Post) {}, fields: []string{FieldID}, wantErr: ErrInvalidID},
		{name: "scoped to title ignores user id", modify: func(p *models.Post) { p.UserID = 0 }, fields: []string{FieldTitle}},
	}

	v := NewResourceValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPost()
			tt.modify(&p)

			err := v.Validate(context.Background(), p, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// User
// ---------------------------------------------------------------------------

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*models.User)
		fields  []string
		wantErr error
	}{
		{name: "valid defaults", modify: func(*models.User) {}},
		{name: "empty email allowed", modify: func(u *models.User) { u.Email = "" }},
		{name: "bad email", modify: func(u *models.User) { u.Email = "not-an-email" }, wantErr: ErrInvalidEmail},
		{name: "blank name", modify: func(u *models.User) { u.Name = "" }, wantErr: ErrEmptyName},
		{name: "blank username", modify: func(u *models.User) { u.Username = "\t" }, wantErr: ErrEmptyUsername},
		{name: "new record with id", modify: func(u *models.User) { u.ID = 1 }, fields: []string{FieldNewRecord}, wantErr: ErrIDMustBeEmpty},
		{name: "id present", modify: func(u *models.User) { u.ID = 1 }, fields: []string{FieldID}},
	}

	v := NewResourceValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.modify(&u)

			err := v.Validate(context.Background(), u, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Fault
// ---------------------------------------------------------------------------

func TestValidateFault(t *testing.T) {
	tests := []struct {
		name    string
		fault   models.Fault
		wantErr error
	}{
		{name: "status only", fault: models.Fault{StatusCode: 500}},
		{name: "delay only", fault: models.Fault{DelayMS: 100}},
		{name: "drop only", fault: models.Fault{Drop: true, Rate: 0.5}},
		{name: "no effect", fault: models.Fault{Body: "x"}, wantErr: ErrFaultHasNoEffect},
		{name: "status too small", fault: models.Fault{StatusCode: 42}, wantErr: ErrInvalidStatus},
		{name: "status too big", fault: models.Fault{StatusCode: 600}, wantErr: ErrInvalidStatus},
		{name: "negative delay", fault: models.Fault{DelayMS: -1, Drop: true}, wantErr: ErrNegativeDelay},
		{name: "rate above one", fault: models.Fault{Drop: true, Rate: 1.5}, wantErr: ErrInvalidRate},
		{name: "negative rate", fault: models.Fault{Drop: true, Rate: -0.1}, wantErr: ErrInvalidRate},
	}

	v := NewResourceValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.fault)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
