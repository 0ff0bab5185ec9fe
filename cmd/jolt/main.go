package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	jolt "github.com/PappaNiels/JoltPhysics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger  *zap.SugaredLogger
	verbose bool

	scaleFlag []float32
	wireframe bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jolt",
		Short: "collision geometry scene tool",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var log *zap.Logger
			if verbose {
				log, _ = zap.NewDevelopment()
			} else {
				log = zap.NewNop()
			}
			logger = log.Sugar()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	validateCmd := &cobra.Command{
		Use:   "validate [scene.yaml]",
		Short: "build all shapes in a scene and check scales",
		Args:  cobra.ExactArgs(1),
		RunE:  validateScene,
	}
	validateCmd.Flags().Float32SliceVar(&scaleFlag, "scale", []float32{1, 1, 1}, "scale to check per shape")

	statsCmd := &cobra.Command{
		Use:   "stats [scene.yaml]",
		Short: "report geometric and memory stats per shape",
		Args:  cobra.ExactArgs(1),
		RunE:  sceneStats,
	}

	castCmd := &cobra.Command{
		Use:   "cast [scene.yaml]",
		Short: "run the ray and shape casts defined in a scene",
		Args:  cobra.ExactArgs(1),
		RunE:  runCasts,
	}

	drawCmd := &cobra.Command{
		Use:   "draw [scene.yaml]",
		Short: "record and print the debug draw primitives of a scene",
		Args:  cobra.ExactArgs(1),
		RunE:  drawScene,
	}
	drawCmd.Flags().BoolVar(&wireframe, "wireframe", false, "draw as wireframes")

	rootCmd.AddCommand(validateCmd, statsCmd, castCmd, drawCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadAndBuild(path string) (*Scene, map[string]jolt.ShapeInterface, error) {
	scene, err := LoadScene(path)
	if err != nil {
		return nil, nil, err
	}
	logger.Infow("scene loaded", "path", path, "shapes", len(scene.Shapes))

	shapes, err := scene.Build()
	if err != nil {
		return nil, nil, err
	}
	return scene, shapes, nil
}

func validateScene(cmd *cobra.Command, args []string) error {
	if len(scaleFlag) != 3 {
		return fmt.Errorf("--scale needs exactly 3 components")
	}
	scale := mgl32.Vec3{scaleFlag[0], scaleFlag[1], scaleFlag[2]}

	_, shapes, err := loadAndBuild(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHAPE\tSCALE VALID")
	for name, shape := range shapes {
		fmt.Fprintf(w, "%s\t%v\n", name, shape.IsValidScale(scale))
	}
	return w.Flush()
}

func sceneStats(cmd *cobra.Command, args []string) error {
	_, shapes, err := loadAndBuild(args[0])
	if err != nil {
		return err
	}

	// One visited set across all shapes so geometry shared between scene
	// entries is only counted once.
	visited := jolt.MakeVisitedShapes()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHAPE\tTYPE\tVOLUME\tINNER RADIUS\tMASS\tBYTES\tTRIANGLES")
	for name, shape := range shapes {
		stats := shape.GetStatsRecursive(visited)
		mass := shape.GetMassProperties().Mass
		fmt.Fprintf(w, "%s\t%d\t%.4f\t%.4f\t%.4f\t%d\t%d\n",
			name, shape.GetType(), shape.GetVolume(), shape.GetInnerRadius(), mass, stats.SizeBytes, stats.NumTriangles)
	}
	return w.Flush()
}

func runCasts(cmd *cobra.Command, args []string) error {
	scene, shapes, err := loadAndBuild(args[0])
	if err != nil {
		return err
	}

	unitScale := mgl32.Vec3{1, 1, 1}

	for i, rayConfig := range scene.Rays {
		target, ok := shapes[rayConfig.Target]
		if !ok {
			return fmt.Errorf("ray %d: unknown target shape %q", i, rayConfig.Target)
		}

		// Queries run in the target's center of mass space
		ray := jolt.RayCast{
			Origin:    vec3(rayConfig.Origin).Sub(target.GetCenterOfMass()),
			Direction: vec3(rayConfig.Direction),
		}
		hit := jolt.MakeRayCastResult()
		if target.CastRay(ray, jolt.SubShapeIDCreator{}, &hit) {
			point := vec3(rayConfig.Origin).Add(vec3(rayConfig.Direction).Mul(hit.Fraction))
			fmt.Printf("ray %d vs %s: hit at fraction %.4f, point (%.3f %.3f %.3f)\n",
				i, rayConfig.Target, hit.Fraction, point.X(), point.Y(), point.Z())
		} else {
			fmt.Printf("ray %d vs %s: no hit\n", i, rayConfig.Target)
		}
	}

	for i, castConfig := range scene.Casts {
		moving, ok := shapes[castConfig.Shape]
		if !ok {
			return fmt.Errorf("cast %d: unknown shape %q", i, castConfig.Shape)
		}
		target, ok := shapes[castConfig.Target]
		if !ok {
			return fmt.Errorf("cast %d: unknown target shape %q", i, castConfig.Target)
		}

		start := mgl32.Translate3D(
			castConfig.Start[0]+moving.GetCenterOfMass().X(),
			castConfig.Start[1]+moving.GetCenterOfMass().Y(),
			castConfig.Start[2]+moving.GetCenterOfMass().Z())
		shapeCast := jolt.MakeShapeCast(moving, unitScale, start, vec3(castConfig.Direction))

		targetCOM := target.GetCenterOfMass()
		targetTransform := mgl32.Translate3D(targetCOM.X(), targetCOM.Y(), targetCOM.Z())

		collector := &jolt.ClosestHitCastShapeCollector{}
		jolt.CastShapeVsShape(shapeCast, jolt.MakeShapeCastSettings(), target, unitScale, jolt.ShapeFilterAll{},
			targetTransform, jolt.SubShapeIDCreator{}, jolt.SubShapeIDCreator{}, collector)

		if collector.HadHit {
			fmt.Printf("cast %d %s vs %s: hit at fraction %.4f\n",
				i, castConfig.Shape, castConfig.Target, collector.Hit.Fraction)
		} else {
			fmt.Printf("cast %d %s vs %s: no hit\n", i, castConfig.Shape, castConfig.Target)
		}
	}

	return nil
}

func drawScene(cmd *cobra.Command, args []string) error {
	_, shapes, err := loadAndBuild(args[0])
	if err != nil {
		return err
	}

	recorder := jolt.NewDebugRendererRecorder()
	for _, shape := range shapes {
		com := shape.GetCenterOfMass()
		transform := mgl32.Translate3D(com.X(), com.Y(), com.Z())
		shape.Draw(recorder, transform, mgl32.Vec3{1, 1, 1}, jolt.ColorWhite, true, wireframe)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tPOSITION\tSIZE\tWIREFRAME")
	for _, primitive := range recorder.Primitives {
		position := jolt.Mat4GetTranslation(primitive.Transform)
		switch primitive.Kind {
		case jolt.DebugRenderPrimitiveKind.Sphere:
			fmt.Fprintf(w, "sphere\t(%.3f %.3f %.3f)\tr=%.3f\t%v\n",
				position.X(), position.Y(), position.Z(), primitive.Radius, primitive.Wireframe)
		case jolt.DebugRenderPrimitiveKind.Box:
			fmt.Fprintf(w, "box\t(%.3f %.3f %.3f)\the=(%.3f %.3f %.3f)\t%v\n",
				position.X(), position.Y(), position.Z(),
				primitive.HalfExtent.X(), primitive.HalfExtent.Y(), primitive.HalfExtent.Z(), primitive.Wireframe)
		}
	}
	return w.Flush()
}
