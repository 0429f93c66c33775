package discord

import "testing"

func TestExtractRoleIDFromText(t *testing.T) {
	_, err := ExtractRoleIDFromText("invalid")
	if err == nil {
		t.Error("Expected error for invalid role ID string")
	}

	_, err = ExtractRoleIDFromText("<@&123>")
	if err == nil {
		t.Error("Expected error for invalid role ID string")
	}

	_, err = ExtractRoleIDFromText("<@&141101495071408128")
	if err == nil {
		t.Error("Expected error for invalid role ID string")
	}

	_, err = ExtractRoleIDFromText("<@141101495071408128>")
	if err == nil {
		t.Error("Expected error for invalid role ID string")
	}

	_, err = ExtractRoleIDFromText("<@&-141101495071408128>")
	if err == nil {
		t.Error("Expected error for invalid role ID string")
	}

	id, err := ExtractRoleIDFromText("<@&141101495071408128>")
	if err != nil {
		t.Error("Expected nil error from valid Role ID string <@&141101495071408128>")
	}
	if id != "141101495071408128" {
		t.Error("ID was not extracted correctly")
	}
}

func TestExtractUserIDFromText(t *testing.T) {
	_, err := ExtractUserIDFromText("invalid")
	if err == nil {
		t.Error("Expected error for invalid user ID string")
	}

	_, err = ExtractUserIDFromText("<@123>")
	if err == nil {
		t.Error("Expected error for invalid user ID string")
	}

	_, err = ExtractUserIDFromText("<@141101495071408128")
	if err == nil {
		t.Error("Expected error for invalid user ID string")
	}

	_, err = ExtractUserIDFromText("<@-141101495071408128>")
	if err == nil {
		t.Error("Expected error for invalid user ID string")
	}

	id, err := ExtractUserIDFromText("<@141101495071408128>")
	if err != nil {
		t.Error("Expected nil error from valid Role ID string <@141101495071408128>")
	}
	if id != "141101495071408128" {
		t.Error("ID was not extracted correctly")
	}

	id, err = ExtractUserIDFromText("<@!141101495071408128>")
	if err != nil {
		t.Error("Expected nil error from valid Role ID string <@!141101495071408128>")
	}
	if id != "141101495071408128" {
		t.Error("ID was not extracted correctly")
	}
}

func TestParseUserID(t *testing.T) {
	_, err := ParseUserID("<@123>")
	if err == nil {
		t.Error("Expected error for an ID prior to the discord epoch")
	}

	id, err := ParseUserID("<@!141101495071408128>")
	if err != nil {
		t.Error(err)
	}
	if id != 141101495071408128 {
		t.Error("ID was not parsed correctly")
	}

	id, err = ParseUserID("141101495071408128")
	if err != nil {
		t.Error(err)
	}
	if id != 141101495071408128 {
		t.Error("ID was not parsed correctly")
	}
}

func TestMentionByUserID(t *testing.T) {
	if MentionByUserID(141101495071408128) != "<@!141101495071408128>" {
		t.Error("unexpected mention format")
	}
}
