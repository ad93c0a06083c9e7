package app

import (
	"testing"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

func childNamed(node *models.FolderNode, name string) *models.FolderNode {
	for _, c := range node.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestBuildTree(t *testing.T) {
	root := BuildTree(enrichTestInventory(t))

	projects := childNamed(root, "Projects")
	if projects == nil {
		t.Fatal("expected a Projects node under root")
	}
	if projects.Folder == nil || projects.Folder.Name != "Projects" {
		t.Error("Projects node should carry its inventory record")
	}
	if len(projects.Files) != 2 {
		t.Errorf("expected 2 files under Projects, got %d", len(projects.Files))
	}

	archive := childNamed(projects, "Archive")
	if archive == nil {
		t.Fatal("expected an Archive node under Projects")
	}
	if archive.Path != "Projects/Archive" {
		t.Errorf("unexpected path %q", archive.Path)
	}
	if len(archive.Files) != 1 || archive.Files[0].Name != "budget.xlsx" {
		t.Errorf("unexpected files under Archive: %v", names(archive.Files))
	}

	// Root-level file with no folder path lives on the root node.
	if len(root.Files) != 1 || root.Files[0].Name != "scan.pdf" {
		t.Errorf("expected scan.pdf on root, got %v", names(root.Files))
	}
}

func TestBuildTree_ImpliedIntermediateFolders(t *testing.T) {
	records := mustEnrich(t, []models.Record{
		{Name: "deep.pdf", Kind: models.KindFile, FolderPath: "a/b/c"},
	})

	root := BuildTree(records)
	a := childNamed(root, "a")
	if a == nil || a.Folder != nil {
		t.Fatal("expected an implied node for a")
	}
	b := childNamed(a, "b")
	if b == nil {
		t.Fatal("expected an implied node for b")
	}
	c := childNamed(b, "c")
	if c == nil || len(c.Files) != 1 {
		t.Fatal("expected deep.pdf under a/b/c")
	}
}

func TestBuildTree_ChildrenSorted(t *testing.T) {
	records := mustEnrich(t, []models.Record{
		{Name: "zeta", Kind: models.KindFolder, FolderPath: "zeta"},
		{Name: "alpha", Kind: models.KindFolder, FolderPath: "alpha"},
		{Name: "mid", Kind: models.KindFolder, FolderPath: "mid"},
	})

	root := BuildTree(records)
	expected := []string{"alpha", "mid", "zeta"}
	if len(root.Children) != len(expected) {
		t.Fatalf("expected %d children, got %d", len(expected), len(root.Children))
	}
	for i, name := range expected {
		if root.Children[i].Name != name {
			t.Errorf("child %d: expected %s, got %s", i, name, root.Children[i].Name)
		}
	}
}

func TestBuildTree_Empty(t *testing.T) {
	root := BuildTree(nil)
	if root == nil || len(root.Children) != 0 || len(root.Files) != 0 {
		t.Error("empty input should yield a bare root node")
	}
}
