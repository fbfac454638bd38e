// Package models defines the user record shown on a card and the closed set
// of fields a viewer can expand.
package models

import (
	"errors"
	"strconv"
	"strings"
)

// User is a single randomly generated user as returned by the record source.
// Values are passed through untouched, including the plaintext password.
type User struct {
	ID        int    `json:"id"`
	UID       string `json:"uid"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}

// FullName is the card title.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Value returns the display value of f for this user.
func (u User) Value(f Field) (string, bool) {
	switch f {
	case FieldID:
		return strconv.Itoa(u.ID), true
	case FieldUID:
		return u.UID, true
	case FieldUsername:
		return u.Username, true
	case FieldEmail:
		return u.Email, true
	case FieldPassword:
		return u.Password, true
	}
	return "", false
}

// Field identifies an expandable row on a card.
type Field int

const (
	FieldNone Field = iota
	FieldID
	FieldUID
	FieldUsername
	FieldEmail
	FieldPassword
)

// Fields lists the expandable rows in display order.
var Fields = []Field{FieldID, FieldUID, FieldUsername, FieldEmail, FieldPassword}

var ErrUnknownField = errors.New("unknown field")

var fieldLabels = map[Field]string{
	FieldID:       "ID",
	FieldUID:      "UID",
	FieldUsername: "Username",
	FieldEmail:    "Email",
	FieldPassword: "Password",
}

func (f Field) String() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return "none"
}

// ParseField accepts a label (case-insensitive) or a 1-based row number.
func ParseField(s string) (Field, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(Fields) {
			return FieldNone, ErrUnknownField
		}
		return Fields[n-1], nil
	}
	for _, f := range Fields {
		if strings.EqualFold(fieldLabels[f], s) {
			return f, nil
		}
	}
	return FieldNone, ErrUnknownField
}
