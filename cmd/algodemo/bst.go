package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"

	"search_algo_code/bst"
)

func runBST(cctx *cli.Context) error {
	log, done, err := newLogger(cctx, "bst")
	if err != nil {
		return err
	}
	defer done()

	keys := cctx.IntSlice("keys")
	tree := bst.Build(keys)
	log.Debugw("built tree", "keys", keys, "size", tree.Size(), "height", tree.Height())

	w := cctx.App.Writer
	color.New(color.Bold, color.FgYellow).Fprintln(w, "========== BINARY SEARCH TREE ==========")
	fmt.Fprintln(w, renderTree(tree))

	label := color.New(color.Bold, color.FgCyan).SprintFunc()
	fmt.Fprintf(w, "%s %v\n", label("valid:"), tree.IsValid())
	fmt.Fprintf(w, "%s %v\n", label("in order:"), tree.Keys())
	for _, k := range keys {
		fmt.Fprintf(w, "%s %d at level %d\n", label("level:"), k, tree.Level(k))
	}

	min, max, err := tree.MinMax()
	if errors.Is(err, bst.ErrEmptyTree) {
		fmt.Fprintf(w, "%s empty tree\n", label("min/max:"))
	} else {
		fmt.Fprintf(w, "%s %d / %d\n", label("min/max:"), min, max)
	}

	threshold := cctx.Int("threshold")
	fmt.Fprintf(w, "%s %v\n", label(fmt.Sprintf(">= %d:", threshold)), tree.CollectAtLeast(threshold))

	k := cctx.Int("k")
	n, err := tree.KthSmallest(k)
	if err != nil {
		log.Warnw("k-th smallest query failed", "k", k, "err", err)
		fmt.Fprintf(w, "%s %s\n", label(fmt.Sprintf("%d-th smallest:", k)), color.RedString(err.Error()))
	} else {
		fmt.Fprintf(w, "%s %d\n", label(fmt.Sprintf("%d-th smallest:", k)), n.Key())
	}
	return nil
}

// renderTree draws the tree with each child labelled by its side.
func renderTree(tree *bst.Tree[int]) string {
	root := tree.Root()
	if root == nil {
		return treeprint.NewWithRoot("(empty)").String()
	}
	out := treeprint.NewWithRoot(root.Key())
	addChildren(out, root)
	return out.String()
}

func addChildren(out treeprint.Tree, n *bst.Node[int]) {
	addChild(out, "L", n.Left())
	addChild(out, "R", n.Right())
}

func addChild(out treeprint.Tree, side string, child *bst.Node[int]) {
	if child == nil {
		return
	}
	label := fmt.Sprintf("%s: %d", side, child.Key())
	if child.Left() == nil && child.Right() == nil {
		out.AddNode(label)
		return
	}
	addChildren(out.AddBranch(label), child)
}
