package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Emilinya/bounce/internal/collision"
	"github.com/Emilinya/bounce/internal/core"
)

var (
	flagBox      []float64
	flagBoundary []float64
	flagDir      []float64
	flagSelf     []float64
	flagOther    []float64
	flagEdges    bool
	flagDepths   bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate a single collision check",
	Long: `Run the collision resolver once and print the bounce direction,
or "none" when there is no collision. Inconsistent inputs are logged
to stderr and reported as "none (<kind>)".

Rectangles are given as cx,cy,w,h (center and size), or as l,t,r,b
(edges) with --edges. The y axis points down.`,
}

var checkBoundaryCmd = &cobra.Command{
	Use:   "boundary",
	Short: "Check a box against the boundary it should stay inside",
	Long: `Check a box against its boundary.

Examples:
  bounce check boundary --box 9.1,0,1,1 --boundary 0,0,10,10
  bounce check boundary --edges --box -6,0,-4,1 --boundary -5,-5,5,5`,
	Args: cobra.NoArgs,
	RunE: runCheckBoundary,
}

var checkRectCmd = &cobra.Command{
	Use:   "rect",
	Short: "Check a moving box against another box",
	Long: `Check a box moving in direction --dir against another box.

Examples:
  bounce check rect --dir 1,0 --edges --self 0,0,1,1 --other 0.5,0.9,1.5,1.9
  bounce check rect --dir 0,-1 --self 0,0,2,2 --other 0,-1.5,4,2 --depths`,
	Args: cobra.NoArgs,
	RunE: runCheckRect,
}

func init() {
	checkCmd.PersistentFlags().BoolVar(&flagEdges, "edges", false, "Read rectangles as l,t,r,b instead of cx,cy,w,h")

	checkBoundaryCmd.Flags().Float64SliceVar(&flagBox, "box", nil, "Box rectangle")
	checkBoundaryCmd.Flags().Float64SliceVar(&flagBoundary, "boundary", nil, "Boundary rectangle")
	_ = checkBoundaryCmd.MarkFlagRequired("box")
	_ = checkBoundaryCmd.MarkFlagRequired("boundary")

	checkRectCmd.Flags().Float64SliceVar(&flagDir, "dir", nil, "Direction of travel as x,y")
	checkRectCmd.Flags().Float64SliceVar(&flagSelf, "self", nil, "Moving box rectangle")
	checkRectCmd.Flags().Float64SliceVar(&flagOther, "other", nil, "Other box rectangle")
	checkRectCmd.Flags().BoolVar(&flagDepths, "depths", false, "Also print the four face depths")
	_ = checkRectCmd.MarkFlagRequired("dir")
	_ = checkRectCmd.MarkFlagRequired("self")
	_ = checkRectCmd.MarkFlagRequired("other")

	checkCmd.AddCommand(checkBoundaryCmd)
	checkCmd.AddCommand(checkRectCmd)
}

func newCLIChecker() *collision.Checker {
	return collision.NewChecker(collision.WithLogger(log.Default().WithPrefix("collision")))
}

func runCheckBoundary(cmd *cobra.Command, _ []string) error {
	box, err := parseRect("box", flagBox, flagEdges)
	if err != nil {
		return err
	}
	boundary, err := parseRect("boundary", flagBoundary, flagEdges)
	if err != nil {
		return err
	}

	outcome := newCLIChecker().Boundary(box, boundary)
	fmt.Fprintln(cmd.OutOrStdout(), outcome)
	return nil
}

func runCheckRect(cmd *cobra.Command, _ []string) error {
	dir, err := parseVec("dir", flagDir)
	if err != nil {
		return err
	}
	self, err := parseRect("self", flagSelf, flagEdges)
	if err != nil {
		return err
	}
	other, err := parseRect("other", flagOther, flagEdges)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	outcome := newCLIChecker().Rect(dir, self, other)
	fmt.Fprintln(out, outcome)

	if flagDepths {
		d := collision.Penetration(self, other)
		fmt.Fprintf(out, "depths: bottom=%g right=%g left=%g top=%g\n", d.Bottom, d.Right, d.Left, d.Top)
	}
	return nil
}

// parseVec reads an x,y pair.
func parseVec(name string, v []float64) (core.Vec2, error) {
	if len(v) != 2 {
		return core.Vec2{}, fmt.Errorf("--%s needs 2 values (x,y), got %d", name, len(v))
	}
	return core.NewVec2(v[0], v[1]), nil
}

// parseRect reads a rectangle as cx,cy,w,h or, with edges, l,t,r,b.
func parseRect(name string, v []float64, edges bool) (core.Rect, error) {
	if len(v) != 4 {
		layout := "cx,cy,w,h"
		if edges {
			layout = "l,t,r,b"
		}
		return core.Rect{}, fmt.Errorf("--%s needs 4 values (%s), got %d", name, layout, len(v))
	}
	if edges {
		return core.RectFromEdges(v[0], v[1], v[2], v[3]), nil
	}
	return core.RectFromCenterSize(core.NewVec2(v[0], v[1]), core.NewVec2(v[2], v[3])), nil
}
