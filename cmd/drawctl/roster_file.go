package main

import (
	"fmt"
	"os"

	"giftexchange/internal/core/domain/model/roster"

	"gopkg.in/yaml.v3"
)

// rosterFile is the on-disk layout. JSON files parse as YAML too, and a bare
// list of groups is accepted as written by the service's file store before
// rosters carried metadata.
type rosterFile struct {
	Groups []groupFile `yaml:"groups"`
}

type groupFile struct {
	Name       string       `yaml:"name"`
	Email      string       `yaml:"email"`
	PicksFirst bool         `yaml:"picksFirst"`
	Members    []memberFile `yaml:"members"`
}

type memberFile struct {
	Name string `yaml:"name"`
	Rank *int   `yaml:"rank"`
}

func readRosterFile(path string) ([]roster.GroupEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("parse %s: file is empty", path)
	}

	var file rosterFile
	if doc.Content[0].Kind == yaml.SequenceNode {
		err = doc.Content[0].Decode(&file.Groups)
	} else {
		err = doc.Content[0].Decode(&file)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	out := make([]roster.GroupEntry, 0, len(file.Groups))
	for _, g := range file.Groups {
		entry := roster.GroupEntry{Name: g.Name, Email: g.Email, PicksFirst: g.PicksFirst}
		for _, m := range g.Members {
			entry.Members = append(entry.Members, roster.MemberEntry{Name: m.Name, Rank: m.Rank})
		}
		out = append(out, entry)
	}
	return out, nil
}
