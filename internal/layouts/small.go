package layouts

import (
	prim "github.com/comalice/airportfta/internal/primitives"
)

// dummy is used for stations that have no proper airport: aircraft circle
// around the tile and never land.
func dummy() prim.Layout {
	return prim.Layout{
		Name:        "dummy",
		Rows:        dummyRows,
		MovingData:  dummyMovingData,
		EntryPoints: []prim.Position{0, 1, 2, 3},
		Flags:       prim.AllAircraft,
	}
}

var dummyMovingData = []prim.MovingData{
	{0, 0, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},
	{0, 96, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},
	{96, 96, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},
	{96, 0, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},
}

var dummyRows = []prim.ElementRow{
	{0, prim.ToAll, prim.NothingBlock, 3},
	{1, prim.ToAll, prim.NothingBlock, 0},
	{2, prim.ToAll, prim.NothingBlock, 1},
	{3, prim.ToAll, prim.NothingBlock, 2},
	prim.EndMarker,
}

// country is the small airport: one short runway, two terminals.
func country() prim.Layout {
	return prim.Layout{
		Name:        "country",
		Rows:        countryRows,
		MovingData:  countryMovingData,
		Terminals:   []int{1, 2},
		EntryPoints: []prim.Position{16, 15, 18, 17},
		Flags:       prim.AllAircraft | prim.ShortStrip,
	}
}

var countryMovingData = []prim.MovingData{
	{53, 3, prim.ExactPos, prim.DirSE},                         // 00 In hangar
	{53, 27, 0, prim.DirN},                                     // 01 Taxi to right outside depot
	{32, 23, prim.ExactPos, prim.DirNW},                        // 02 Terminal 1
	{10, 23, prim.ExactPos, prim.DirNW},                        // 03 Terminal 2
	{43, 37, 0, prim.DirN},                                     // 04 Going towards terminal 2
	{24, 37, 0, prim.DirN},                                     // 05 Going towards terminal 2
	{53, 37, 0, prim.DirN},                                     // 06 Going for takeoff
	{61, 40, prim.ExactPos, prim.DirNE},                        // 07 Taxi to start of runway (takeoff)
	{3, 40, prim.NoSpeedClamp, prim.DirN},                      // 08 Accelerate to end of runway
	{-79, 40, prim.NoSpeedClamp | prim.TakeoffMove, prim.DirN}, // 09 Take off
	{177, 40, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 10 Fly to landing position in air
	{56, 40, prim.NoSpeedClamp | prim.LandMove, prim.DirN},     // 11 Going down for land
	{3, 40, prim.NoSpeedClamp | prim.Brake, prim.DirN},         // 12 Just landed, brake until end of runway
	{7, 40, 0, prim.DirN},                                      // 13 Just landed, turn around and taxi 1 square
	{53, 40, 0, prim.DirN},                                     // 14 Taxi from runway to crossing
	{-31, 193, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},   // 15 Fly around waiting for a landing spot (north-east)
	{1, 1, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},       // 16 Fly around waiting for a landing spot (north-west)
	{257, 1, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},     // 17 Fly around waiting for a landing spot (south-west)
	{273, 49, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 18 Fly around waiting for a landing spot (south)
	{44, 37, prim.HeliRaise, prim.DirN},                        // 19 Helicopter takeoff
	{44, 40, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},     // 20 In position above landing spot helicopter
	{44, 40, prim.HeliLower, prim.DirN},                        // 21 Helicopter landing
}

var countryRows = []prim.ElementRow{
	{0, prim.Hangar, prim.NothingBlock, 1},
	{1, prim.TermGroup, prim.AirportBusyBlock, 0}, {1, prim.Hangar, 0, 0}, {1, prim.Term1, prim.Term1Block, 2}, {1, prim.Term2, 0, 4}, {1, prim.HeliTakeoff, 0, 19}, {1, prim.ToAll, 0, 6},
	{2, prim.Term1, prim.Term1Block, 1},
	{3, prim.Term2, prim.Term2Block, 5},
	{4, prim.TermGroup, prim.AirportBusyBlock, 0}, {4, prim.Term2, 0, 5}, {4, prim.Hangar, 0, 1}, {4, prim.Takeoff, 0, 6}, {4, prim.HeliTakeoff, 0, 1},
	{5, prim.TermGroup, prim.AirportBusyBlock, 0}, {5, prim.Term2, prim.Term2Block, 3}, {5, prim.ToAll, 0, 4},
	{6, prim.ToAll, prim.AirportBusyBlock, 7},
	// takeoff
	{7, prim.Takeoff, prim.AirportBusyBlock, 8},
	{8, prim.StartTakeoff, prim.NothingBlock, 9},
	{9, prim.EndTakeoff, prim.NothingBlock, 0},
	// landing
	{10, prim.Flying, prim.NothingBlock, 15}, {10, prim.Landing, 0, 11}, {10, prim.HeliLanding, 0, 20},
	{11, prim.Landing, prim.AirportBusyBlock, 12},
	{12, prim.ToAll, prim.AirportBusyBlock, 13},
	{13, prim.EndLanding, prim.AirportBusyBlock, 14}, {13, prim.Term2, 0, 5}, {13, prim.ToAll, 0, 14},
	{14, prim.ToAll, prim.AirportBusyBlock, 1},
	// in air
	{15, prim.ToAll, prim.NothingBlock, 16},
	{16, prim.ToAll, prim.NothingBlock, 17},
	{17, prim.ToAll, prim.NothingBlock, 18},
	{18, prim.ToAll, prim.NothingBlock, 10},
	{19, prim.HeliTakeoff, prim.NothingBlock, 0},
	{20, prim.HeliLanding, prim.AirportBusyBlock, 21},
	{21, prim.HeliEndLanding, prim.AirportBusyBlock, 1},
	prim.EndMarker,
}

// commuter is a compact airport with three terminals and two helipads
// sharing one runway.
func commuter() prim.Layout {
	return prim.Layout{
		Name:        "commuter",
		Rows:        commuterRows,
		MovingData:  commuterMovingData,
		Terminals:   []int{1, 3},
		Helipads:    []int{1, 2},
		EntryPoints: []prim.Position{18, 17, 20, 19},
		Flags:       prim.AllAircraft,
	}
}

var commuterMovingData = []prim.MovingData{
	{69, 3, prim.ExactPos, prim.DirSE},                         // 00 In hangar
	{72, 22, 0, prim.DirN},                                     // 01 Outside hangar
	{24, 36, prim.ExactPos, prim.DirSE},                        // 02 Terminal 1
	{40, 36, prim.ExactPos, prim.DirSE},                        // 03 Terminal 2
	{56, 36, prim.ExactPos, prim.DirSE},                        // 04 Terminal 3
	{8, 24, prim.ExactPos, prim.DirSW},                         // 05 Helipad 1
	{8, 40, prim.ExactPos, prim.DirSW},                         // 06 Helipad 2
	{72, 40, 0, prim.DirN},                                     // 07 Taxi towards runway
	{69, 56, prim.ExactPos, prim.DirNE},                        // 08 Holding point, start of runway
	{0, 56, prim.NoSpeedClamp, prim.DirN},                      // 09 Accelerate to end of runway
	{-79, 56, prim.NoSpeedClamp | prim.TakeoffMove, prim.DirN}, // 10 Take off
	{177, 56, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 11 Fly to landing position in air
	{72, 56, prim.NoSpeedClamp | prim.LandMove, prim.DirN},     // 12 Going down for land
	{3, 56, prim.NoSpeedClamp | prim.Brake, prim.DirN},         // 13 Just landed, brake until end of runway
	{7, 56, 0, prim.DirN},                                      // 14 Turn around
	{24, 56, 0, prim.DirN},                                     // 15 Taxi off runway
	{24, 22, 0, prim.DirN},                                     // 16 Taxi back to the apron
	{-31, 193, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},   // 17 Holding pattern (north-east)
	{1, 1, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},       // 18 Holding pattern (north-west)
	{257, 1, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},     // 19 Holding pattern (south-west)
	{273, 49, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 20 Holding pattern (south)
	{72, 22, prim.HeliRaise, prim.DirN},                        // 21 Helicopter takeoff
	{8, 32, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},      // 22 Above the helipads
	{8, 32, prim.HeliLower, prim.DirN},                         // 23 Helicopter landing
}

var commuterRows = []prim.ElementRow{
	{0, prim.Hangar, prim.NothingBlock, 1},
	{1, prim.TermGroup, prim.TaxiwayBusyBlock, 0}, {1, prim.Hangar, 0, 0}, {1, prim.Term1, 0, 2}, {1, prim.Term2, 0, 3}, {1, prim.Term3, 0, 4},
	{1, prim.Helipad1, 0, 5}, {1, prim.Helipad2, 0, 6}, {1, prim.HeliTakeoff, 0, 21}, {1, prim.ToAll, 0, 7},
	{2, prim.Term1, prim.Term1Block, 1},
	{3, prim.Term2, prim.Term2Block, 1},
	{4, prim.Term3, prim.Term3Block, 1},
	{5, prim.Helipad1, prim.Helipad1Block, 1},
	{6, prim.Helipad2, prim.Helipad2Block, 1},
	{7, prim.ToAll, prim.OutWayBlock, 8},
	// takeoff
	{8, prim.Takeoff, prim.RunwayInOutBlock, 9},
	{9, prim.StartTakeoff, prim.NothingBlock, 10},
	{10, prim.EndTakeoff, prim.NothingBlock, 0},
	// landing
	{11, prim.Flying, prim.NothingBlock, 17}, {11, prim.Landing, 0, 12}, {11, prim.HeliLanding, 0, 22},
	{12, prim.Landing, prim.RunwayInOutBlock, 13},
	{13, prim.ToAll, prim.RunwayInOutBlock, 14},
	{14, prim.EndLanding, prim.RunwayInOutBlock, 15}, {14, prim.ToAll, 0, 15},
	{15, prim.ToAll, prim.InWayBlock, 16},
	{16, prim.ToAll, prim.InWayBlock, 1},
	// in air
	{17, prim.ToAll, prim.NothingBlock, 18},
	{18, prim.ToAll, prim.NothingBlock, 19},
	{19, prim.ToAll, prim.NothingBlock, 20},
	{20, prim.ToAll, prim.NothingBlock, 11},
	// helicopters
	{21, prim.HeliTakeoff, prim.NothingBlock, 0},
	{22, prim.HeliLanding, prim.PreHelipadBlock, 23},
	{23, prim.HeliEndLanding, prim.PreHelipadBlock, 1},
	prim.EndMarker,
}
