package app

import (
	"sort"
	"strings"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

// BuildTree assembles the folder hierarchy from an enriched record set.
// Folder records attach their inventory row at the node addressed by their
// folder path; file records are listed under that same node. Intermediate
// segments that have no inventory row of their own still get a node.
func BuildTree(records []models.Record) *models.FolderNode {
	root := &models.FolderNode{Name: "Root"}
	nodes := map[string]*models.FolderNode{"": root}

	ensure := func(path string) *models.FolderNode {
		if node, ok := nodes[path]; ok {
			return node
		}
		current := root
		walked := ""
		for _, segment := range strings.Split(path, "/") {
			if segment == "" {
				continue
			}
			if walked == "" {
				walked = segment
			} else {
				walked = walked + "/" + segment
			}
			node, ok := nodes[walked]
			if !ok {
				node = &models.FolderNode{Name: segment, Path: walked}
				nodes[walked] = node
				current.Children = append(current.Children, node)
			}
			current = node
		}
		return current
	}

	for i := range records {
		r := records[i]
		node := ensure(r.FolderPath)
		if r.Kind == models.KindFolder {
			node.Folder = &records[i]
		} else {
			node.Files = append(node.Files, r)
		}
	}

	sortTree(root)
	return root
}

func sortTree(node *models.FolderNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		sortTree(child)
	}
}
