package layouts

import (
	prim "github.com/comalice/airportfta/internal/primitives"
)

// heliport is a single helipad without a hangar.
func heliport() prim.Layout {
	return prim.Layout{
		Name:        "heliport",
		Rows:        heliportRows,
		MovingData:  heliportMovingData,
		Helipads:    []int{1, 1},
		EntryPoints: []prim.Position{7, 8, 5, 6},
		Flags:       prim.Helicopters,
		DeltaZ:      60,
	}
}

// oilrig uses the heliport automaton on top of the rig platform.
func oilrig() prim.Layout {
	l := heliport()
	l.Name = "oilrig"
	l.MovingData = oilrigMovingData
	l.DeltaZ = 54
	return l
}

var heliportMovingData = []prim.MovingData{
	{5, 9, prim.ExactPos, prim.DirN},                         // 00 Helipad
	{2, 9, prim.HeliRaise, prim.DirN},                        // 01 Takeoff
	{-3, 9, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 02 In position above landing spot
	{-3, 9, prim.HeliLower, prim.DirN},                       // 03 Descend
	{5, 9, prim.ExactPos, prim.DirN},                         // 04 Touch down on the helipad
	{-31, 59, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},  // 05 Circle (north-east)
	{-31, -49, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN}, // 06 Circle (north-west)
	{49, -49, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},  // 07 Circle (south-west)
	{70, 9, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 08 Circle (south), decide to land
	{38, 9, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 09 Final approach
}

var oilrigMovingData = []prim.MovingData{
	{31, 9, prim.ExactPos, prim.DirN},                        // 00 Helipad
	{28, 9, prim.HeliRaise, prim.DirN},                       // 01 Takeoff
	{23, 9, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 02 In position above landing spot
	{23, 9, prim.HeliLower, prim.DirN},                       // 03 Descend
	{31, 9, prim.ExactPos, prim.DirN},                        // 04 Touch down on the helipad
	{-31, 59, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},  // 05 Circle (north-east)
	{-31, -49, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN}, // 06 Circle (north-west)
	{79, -49, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},  // 07 Circle (south-west)
	{96, 9, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 08 Circle (south), decide to land
	{64, 9, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 09 Final approach
}

var heliportRows = []prim.ElementRow{
	{0, prim.Helipad1, prim.Helipad1Block, 1},
	{1, prim.HeliTakeoff, prim.NothingBlock, 0},
	{2, prim.TermGroup, prim.AirportBusyBlock, 0}, {2, prim.HeliLanding, 0, 3}, {2, prim.HeliTakeoff, 0, 1},
	{3, prim.HeliLanding, prim.AirportBusyBlock, 4},
	{4, prim.HeliEndLanding, prim.AirportBusyBlock, 4}, {4, prim.Helipad1, prim.Helipad1Block, 0}, {4, prim.HeliTakeoff, 0, 2},
	// in air
	{5, prim.ToAll, prim.NothingBlock, 6},
	{6, prim.ToAll, prim.NothingBlock, 7},
	{7, prim.ToAll, prim.NothingBlock, 8},
	{8, prim.Flying, prim.NothingBlock, 5}, {8, prim.HeliLanding, prim.Helipad1Block, 9},
	{9, prim.ToAll, prim.NothingBlock, 2},
	prim.EndMarker,
}

// helidepot is a helipad with a hangar.
func helidepot() prim.Layout {
	return prim.Layout{
		Name:        "helidepot",
		Rows:        helidepotRows,
		MovingData:  helidepotMovingData,
		Helipads:    []int{1, 1},
		EntryPoints: []prim.Position{5, 6, 7, 4},
		Flags:       prim.Helicopters,
	}
}

var helidepotMovingData = []prim.MovingData{
	{24, 4, prim.ExactPos, prim.DirNE},                       // 00 In hangar
	{24, 28, 0, prim.DirN},                                   // 01 Outside hangar
	{5, 38, prim.ExactPos, prim.DirN},                        // 02 Helipad
	{24, 28, prim.HeliRaise, prim.DirN},                      // 03 Takeoff
	{-31, 59, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},  // 04 Circle (north-east)
	{-31, -49, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN}, // 05 Circle (north-west)
	{65, -49, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},  // 06 Circle (south-west)
	{86, 28, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},   // 07 Circle (south), decide to land
	{24, 28, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},   // 08 In position above landing spot
	{24, 28, prim.HeliLower, prim.DirN},                      // 09 Descend
}

var helidepotRows = []prim.ElementRow{
	{0, prim.Hangar, prim.NothingBlock, 1},
	{1, prim.TermGroup, prim.HelipadGroupBlock, 0}, {1, prim.Hangar, 0, 0}, {1, prim.Helipad1, 0, 2}, {1, prim.HeliTakeoff, 0, 3}, {1, prim.ToAll, 0, 0},
	{2, prim.Helipad1, prim.Helipad1Block, 1},
	{3, prim.HeliTakeoff, prim.NothingBlock, 0},
	// in air
	{4, prim.ToAll, prim.NothingBlock, 5},
	{5, prim.ToAll, prim.NothingBlock, 6},
	{6, prim.ToAll, prim.NothingBlock, 7},
	{7, prim.Flying, prim.NothingBlock, 4}, {7, prim.HeliLanding, 0, 8},
	{8, prim.HeliLanding, prim.PreHelipadBlock, 9},
	{9, prim.HeliEndLanding, prim.PreHelipadBlock, 1},
	prim.EndMarker,
}

// helistation has three helipads and a hangar.
func helistation() prim.Layout {
	return prim.Layout{
		Name:        "helistation",
		Rows:        helistationRows,
		MovingData:  helistationMovingData,
		Helipads:    []int{1, 3},
		EntryPoints: []prim.Position{7, 8, 9, 6},
		Flags:       prim.Helicopters,
	}
}

var helistationMovingData = []prim.MovingData{
	{8, 3, prim.ExactPos, prim.DirSE},                        // 00 In hangar
	{8, 22, 0, prim.DirN},                                    // 01 Outside hangar
	{24, 22, prim.ExactPos, prim.DirN},                       // 02 Helipad 1
	{40, 22, prim.ExactPos, prim.DirN},                       // 03 Helipad 2
	{56, 22, prim.ExactPos, prim.DirN},                       // 04 Helipad 3
	{8, 22, prim.HeliRaise, prim.DirN},                       // 05 Takeoff
	{-31, 59, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},  // 06 Circle (north-east)
	{-31, -49, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN}, // 07 Circle (north-west)
	{97, -49, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},  // 08 Circle (south-west)
	{118, 22, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},  // 09 Circle (south), decide to land
	{40, 40, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},   // 10 In position above landing spot
	{40, 40, prim.HeliLower, prim.DirN},                      // 11 Descend
	{40, 36, 0, prim.DirN},                                   // 12 Pre-helipad junction
}

var helistationRows = []prim.ElementRow{
	{0, prim.Hangar, prim.NothingBlock, 1},
	{1, prim.TermGroup, prim.HelipadGroupBlock, 0}, {1, prim.Hangar, 0, 0}, {1, prim.Helipad1, 0, 2}, {1, prim.Helipad2, 0, 3}, {1, prim.Helipad3, 0, 4},
	{1, prim.HeliTakeoff, 0, 5}, {1, prim.ToAll, 0, 0},
	{2, prim.Helipad1, prim.Helipad1Block, 1},
	{3, prim.Helipad2, prim.Helipad2Block, 1},
	{4, prim.Helipad3, prim.Helipad3Block, 1},
	{5, prim.HeliTakeoff, prim.NothingBlock, 0},
	// in air
	{6, prim.ToAll, prim.NothingBlock, 7},
	{7, prim.ToAll, prim.NothingBlock, 8},
	{8, prim.ToAll, prim.NothingBlock, 9},
	{9, prim.Flying, prim.NothingBlock, 6}, {9, prim.HeliLanding, 0, 10},
	{10, prim.HeliLanding, prim.PreHelipadBlock, 11},
	{11, prim.HeliEndLanding, prim.PreHelipadBlock, 12},
	{12, prim.TermGroup, prim.PreHelipadBlock, 0}, {12, prim.Helipad1, 0, 2}, {12, prim.Helipad2, 0, 3}, {12, prim.Helipad3, 0, 4}, {12, prim.ToAll, 0, 1},
	prim.EndMarker,
}
