package card

import "dconn.dev/showcase/internal/motion"

const (
	// NewBrowsingContext is the link target that opens a new tab or window.
	NewBrowsingContext = "_blank"

	MagnetStrength = 20
	MagnetRadius   = 100

	// BadgeStagger is the extra entrance delay per badge position.
	BadgeStagger = 0.05

	PreviewHoverScale = 1.05
)

// entranceViewport fires once, after the card is 50 units inside the viewport.
var entranceViewport = motion.Viewport{Once: true, Margin: 50}

func rootMotion() motion.Spec {
	initial := motion.Style{}.WithOpacity(0).WithY(30)
	inView := motion.Style{}.WithOpacity(1).WithY(0)
	hover := motion.Style{}.WithY(-10).WithTransition(motion.Over(0.3))
	viewport := entranceViewport
	return motion.Spec{
		Initial:    &initial,
		InView:     &inView,
		Hover:      &hover,
		Transition: motion.Over(0.5),
		Viewport:   &viewport,
	}
}

func previewTable() motion.StyleTable {
	return motion.StyleTable{
		Rest:  motion.Style{}.WithScale(1),
		Hover: motion.Style{}.WithScale(PreviewHoverScale),
	}
}

func previewMotion() motion.Spec {
	table := previewTable()
	return motion.Spec{States: &table, Transition: motion.Over(0.5)}
}

func badgeRowMotion() motion.Spec {
	initial := motion.Style{}.WithOpacity(0)
	inView := motion.Style{}.WithOpacity(1)
	return motion.Spec{
		Initial:    &initial,
		InView:     &inView,
		Transition: &motion.Transition{StaggerChildren: 0.1, DelayChildren: 0.2},
		Viewport:   &motion.Viewport{Once: true},
	}
}

func badgeMotion(index int) motion.Spec {
	initial := motion.Style{}.WithOpacity(0).WithY(10)
	inView := motion.Style{}.WithOpacity(1).WithY(0)
	hover := motion.Style{}.WithScale(1.1).WithRotate(-1, 1, -1, 0)
	return motion.Spec{
		Initial:    &initial,
		InView:     &inView,
		Hover:      &hover,
		Transition: &motion.Transition{Duration: 0.3, Delay: motion.StaggerDelay(index, BadgeStagger)},
		Viewport:   &motion.Viewport{Once: true},
	}
}
