package layouts

import (
	prim "github.com/comalice/airportfta/internal/primitives"
)

// city is the large airport: three terminals, separate in and out
// taxiways around a single runway.
func city() prim.Layout {
	return prim.Layout{
		Name:        "city",
		Rows:        cityRows,
		MovingData:  cityMovingData,
		Terminals:   []int{1, 3},
		EntryPoints: []prim.Position{19, 20, 17, 18},
		Flags:       prim.AllAircraft,
	}
}

var cityMovingData = []prim.MovingData{
	{85, 3, prim.ExactPos, prim.DirSE},                        // 00 In hangar
	{85, 22, 0, prim.DirN},                                    // 01 Outside hangar
	{26, 41, prim.ExactPos, prim.DirSW},                       // 02 Terminal 1
	{56, 22, prim.ExactPos, prim.DirSE},                       // 03 Terminal 2
	{38, 8, prim.ExactPos, prim.DirSW},                        // 04 Terminal 3
	{65, 6, 0, prim.DirN},                                     // 05 Taxi to runway
	{80, 27, 0, prim.DirN},                                    // 06 Taxi to runway
	{92, 6, prim.ExactPos, prim.DirNE},                        // 07 Holding point, start of runway
	{3, 6, prim.NoSpeedClamp, prim.DirN},                      // 08 Accelerate to end of runway
	{-79, 6, prim.NoSpeedClamp | prim.TakeoffMove, prim.DirN}, // 09 Take off
	{177, 87, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},   // 10 Fly to landing position in air
	{89, 87, prim.NoSpeedClamp | prim.LandMove, prim.DirN},    // 11 Going down for land
	{20, 87, prim.NoSpeedClamp | prim.Brake, prim.DirN},       // 12 Just landed, brake until end of runway
	{20, 87, 0, prim.DirN},                                    // 13 Turn around
	{36, 71, 0, prim.DirN},                                    // 14 Taxi off runway
	{36, 56, 0, prim.DirN},                                    // 15 Taxi towards the apron
	{56, 56, 0, prim.DirN},                                    // 16 Apron entrance
	{-31, 193, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},  // 17 Holding pattern (north-east)
	{1, 1, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},      // 18 Holding pattern (north-west)
	{257, 1, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 19 Holding pattern (south-west)
	{273, 49, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},   // 20 Holding pattern (south)
	{85, 22, prim.HeliRaise, prim.DirN},                       // 21 Helicopter takeoff
	{44, 40, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 22 Above the apron
	{44, 40, prim.HeliLower, prim.DirN},                       // 23 Helicopter landing
}

var cityRows = []prim.ElementRow{
	{0, prim.Hangar, prim.NothingBlock, 1},
	{1, prim.TermGroup, prim.TaxiwayBusyBlock, 0}, {1, prim.Hangar, 0, 0}, {1, prim.Term1, 0, 2}, {1, prim.Term2, 0, 3}, {1, prim.Term3, 0, 4},
	{1, prim.HeliTakeoff, 0, 21}, {1, prim.ToAll, 0, 5},
	{2, prim.Term1, prim.Term1Block, 1},
	{3, prim.Term2, prim.Term2Block, 1},
	{4, prim.Term3, prim.Term3Block, 1},
	{5, prim.ToAll, prim.OutWayBlock, 6},
	{6, prim.ToAll, prim.OutWayBlock, 7},
	// takeoff
	{7, prim.Takeoff, prim.RunwayInOutBlock, 8},
	{8, prim.StartTakeoff, prim.NothingBlock, 9},
	{9, prim.EndTakeoff, prim.NothingBlock, 0},
	// landing
	{10, prim.Flying, prim.NothingBlock, 17}, {10, prim.Landing, 0, 11}, {10, prim.HeliLanding, 0, 22},
	{11, prim.Landing, prim.RunwayInOutBlock, 12},
	{12, prim.ToAll, prim.RunwayInOutBlock, 13},
	{13, prim.EndLanding, prim.RunwayInOutBlock, 14}, {13, prim.ToAll, 0, 14},
	{14, prim.ToAll, prim.InWayBlock, 15},
	{15, prim.ToAll, prim.InWayBlock, 16},
	{16, prim.TermGroup, prim.AirportEntranceBlock, 0}, {16, prim.Term3, 0, 4}, {16, prim.Term2, 0, 3}, {16, prim.ToAll, 0, 1},
	// in air
	{17, prim.ToAll, prim.NothingBlock, 18},
	{18, prim.ToAll, prim.NothingBlock, 19},
	{19, prim.ToAll, prim.NothingBlock, 20},
	{20, prim.ToAll, prim.NothingBlock, 10},
	// helicopters
	{21, prim.HeliTakeoff, prim.NothingBlock, 0},
	{22, prim.HeliLanding, prim.TaxiwayBusyBlock, 23},
	{23, prim.HeliEndLanding, prim.TaxiwayBusyBlock, 1},
	prim.EndMarker,
}

// metropolitan is a city airport with a dedicated landing runway; landing
// aircraft cross the departure runway on the way to the apron.
func metropolitan() prim.Layout {
	return prim.Layout{
		Name:        "metropolitan",
		Rows:        metropolitanRows,
		MovingData:  metropolitanMovingData,
		Terminals:   []int{1, 3},
		EntryPoints: []prim.Position{20, 21, 18, 19},
		Flags:       prim.AllAircraft,
	}
}

var metropolitanMovingData = []prim.MovingData{
	{85, 3, prim.ExactPos, prim.DirSE},                        // 00 In hangar
	{85, 22, 0, prim.DirN},                                    // 01 Outside hangar
	{26, 41, prim.ExactPos, prim.DirSW},                       // 02 Terminal 1
	{56, 22, prim.ExactPos, prim.DirSE},                       // 03 Terminal 2
	{38, 8, prim.ExactPos, prim.DirSW},                        // 04 Terminal 3
	{65, 6, 0, prim.DirN},                                     // 05 Taxi to departure runway
	{80, 27, 0, prim.DirN},                                    // 06 Taxi to departure runway
	{92, 6, prim.ExactPos, prim.DirNE},                        // 07 Holding point, departure runway
	{3, 6, prim.NoSpeedClamp, prim.DirN},                      // 08 Accelerate to end of runway
	{-79, 6, prim.NoSpeedClamp | prim.TakeoffMove, prim.DirN}, // 09 Take off
	{177, 85, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},   // 10 Fly to landing position in air
	{89, 85, prim.NoSpeedClamp | prim.LandMove, prim.DirN},    // 11 Going down for land
	{3, 85, prim.NoSpeedClamp | prim.Brake, prim.DirN},        // 12 Just landed, brake until end of runway
	{21, 85, 0, prim.DirN},                                    // 13 Turn around
	{21, 69, 0, prim.DirN},                                    // 14 Taxi off landing runway
	{21, 54, 0, prim.DirN},                                    // 15 Wait before crossing
	{21, 38, 0, prim.DirN},                                    // 16 Cross the departure runway
	{56, 38, 0, prim.DirN},                                    // 17 Apron entrance
	{-31, 193, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},  // 18 Holding pattern (north-east)
	{1, 1, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},      // 19 Holding pattern (north-west)
	{257, 1, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 20 Holding pattern (south-west)
	{273, 49, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},   // 21 Holding pattern (south)
	{85, 22, prim.HeliRaise, prim.DirN},                       // 22 Helicopter takeoff
	{44, 40, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 23 Above the apron
	{44, 40, prim.HeliLower, prim.DirN},                       // 24 Helicopter landing
}

var metropolitanRows = []prim.ElementRow{
	{0, prim.Hangar, prim.NothingBlock, 1},
	{1, prim.TermGroup, prim.TaxiwayBusyBlock, 0}, {1, prim.Hangar, 0, 0}, {1, prim.Term1, 0, 2}, {1, prim.Term2, 0, 3}, {1, prim.Term3, 0, 4},
	{1, prim.HeliTakeoff, 0, 22}, {1, prim.ToAll, 0, 5},
	{2, prim.Term1, prim.Term1Block, 1},
	{3, prim.Term2, prim.Term2Block, 1},
	{4, prim.Term3, prim.Term3Block, 1},
	{5, prim.ToAll, prim.OutWayBlock, 6},
	{6, prim.ToAll, prim.OutWayBlock, 7},
	// takeoff
	{7, prim.Takeoff, prim.RunwayOutBlock, 8},
	{8, prim.StartTakeoff, prim.NothingBlock, 9},
	{9, prim.EndTakeoff, prim.NothingBlock, 0},
	// landing
	{10, prim.Flying, prim.NothingBlock, 18}, {10, prim.Landing, 0, 11}, {10, prim.HeliLanding, 0, 23},
	{11, prim.Landing, prim.RunwayInBlock, 12},
	{12, prim.ToAll, prim.RunwayInBlock, 13},
	{13, prim.EndLanding, prim.RunwayInBlock, 14}, {13, prim.ToAll, 0, 14},
	{14, prim.ToAll, prim.InWayBlock, 15},
	{15, prim.ToAll, prim.InWayBlock, 16},
	{16, prim.ToAll, prim.RunwayOutBlock, 17},
	{17, prim.TermGroup, prim.AirportEntranceBlock, 0}, {17, prim.Term3, 0, 4}, {17, prim.Term2, 0, 3}, {17, prim.Term1, 0, 2}, {17, prim.ToAll, 0, 1},
	// in air
	{18, prim.ToAll, prim.NothingBlock, 19},
	{19, prim.ToAll, prim.NothingBlock, 20},
	{20, prim.ToAll, prim.NothingBlock, 21},
	{21, prim.ToAll, prim.NothingBlock, 10},
	// helicopters
	{22, prim.HeliTakeoff, prim.NothingBlock, 0},
	{23, prim.HeliLanding, prim.TaxiwayBusyBlock, 24},
	{24, prim.HeliEndLanding, prim.TaxiwayBusyBlock, 1},
	prim.EndMarker,
}

// international has two terminal groups, two helipads, and separate
// landing and departure runways.
func international() prim.Layout {
	return prim.Layout{
		Name:        "international",
		Rows:        internationalRows,
		MovingData:  internationalMovingData,
		Terminals:   []int{2, 3, 3},
		Helipads:    []int{1, 2},
		EntryPoints: []prim.Position{30, 31, 28, 29},
		Flags:       prim.AllAircraft,
	}
}

var internationalMovingData = []prim.MovingData{
	{7, 55, prim.ExactPos, prim.DirSE},                          // 00 In hangar
	{7, 72, 0, prim.DirN},                                       // 01 Outside hangar
	{24, 72, 0, prim.DirN},                                      // 02 Central taxiway
	{40, 72, 0, prim.DirN},                                      // 03 Terminal group chooser
	{40, 56, 0, prim.DirN},                                      // 04 Group 1 entrance
	{24, 40, prim.ExactPos, prim.DirSW},                         // 05 Terminal 1
	{40, 40, prim.ExactPos, prim.DirSW},                         // 06 Terminal 2
	{56, 40, prim.ExactPos, prim.DirSW},                         // 07 Terminal 3
	{72, 56, 0, prim.DirN},                                      // 08 Group 2 entrance
	{72, 40, prim.ExactPos, prim.DirSW},                         // 09 Terminal 4
	{88, 40, prim.ExactPos, prim.DirSW},                         // 10 Terminal 5
	{104, 40, prim.ExactPos, prim.DirSW},                        // 11 Terminal 6
	{56, 56, 0, prim.DirN},                                      // 12 Group 1 exit
	{88, 56, 0, prim.DirN},                                      // 13 Group 2 exit
	{88, 88, prim.ExactPos, prim.DirNE},                         // 14 Helipad 1
	{104, 88, prim.ExactPos, prim.DirNE},                        // 15 Helipad 2
	{24, 88, 0, prim.DirN},                                      // 16 Departure taxiway
	{8, 104, 0, prim.DirN},                                      // 17 Departure taxiway
	{7, 104, prim.ExactPos, prim.DirNE},                         // 18 Holding point, departure runway
	{-20, 104, prim.NoSpeedClamp, prim.DirN},                    // 19 Accelerate to end of runway
	{-79, 104, prim.NoSpeedClamp | prim.TakeoffMove, prim.DirN}, // 20 Take off
	{209, 8, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},      // 21 Fly to landing position in air
	{120, 8, prim.NoSpeedClamp | prim.LandMove, prim.DirN},      // 22 Going down for land
	{6, 8, prim.NoSpeedClamp | prim.Brake, prim.DirN},           // 23 Just landed, brake until end of runway
	{6, 8, 0, prim.DirN},                                        // 24 Turn around
	{6, 24, 0, prim.DirN},                                       // 25 Taxi off landing runway
	{24, 24, 0, prim.DirN},                                      // 26 Inbound taxiway
	{40, 88, 0, prim.DirN},                                      // 27 Arrival junction
	{-31, 209, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 28 Holding pattern (north-east)
	{1, 1, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},        // 29 Holding pattern (north-west)
	{273, 1, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},      // 30 Holding pattern (south-west)
	{305, 81, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},     // 31 Holding pattern (south)
	{7, 72, prim.HeliRaise, prim.DirN},                          // 32 Helicopter takeoff
	{96, 88, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},      // 33 Above the helipads
	{96, 88, prim.HeliLower, prim.DirN},                         // 34 Helicopter landing
	{96, 72, 0, prim.DirN},                                      // 35 Pre-helipad junction
}

var internationalRows = []prim.ElementRow{
	{0, prim.Hangar, prim.NothingBlock, 1},
	{1, prim.TermGroup, prim.TaxiwayBusyBlock, 0}, {1, prim.Hangar, 0, 0}, {1, prim.Helipad1, 0, 14}, {1, prim.Helipad2, 0, 15},
	{1, prim.HeliTakeoff, 0, 32}, {1, prim.ToAll, 0, 2},
	{2, prim.TermGroup, prim.TaxiwayBusyBlock, 0}, {2, prim.Term1, 0, 4}, {2, prim.Term2, 0, 4}, {2, prim.Term3, 0, 4},
	{2, prim.Term4, 0, 8}, {2, prim.Term5, 0, 8}, {2, prim.Term6, 0, 8}, {2, prim.Hangar, 0, 1}, {2, prim.Takeoff, 0, 16}, {2, prim.ToAll, 0, 3},
	// pick the first terminal group with a free entrance
	{3, prim.TermGroup, prim.TaxiwayBusyBlock, 0}, {3, prim.TermGroup, prim.TermGroup1Block, 0}, {3, prim.TermGroup, prim.TermGroup2Enter1Block, 1},
	{3, prim.Term1, 0, 4}, {3, prim.Term2, 0, 4}, {3, prim.Term3, 0, 4},
	{3, prim.Term4, 0, 8}, {3, prim.Term5, 0, 8}, {3, prim.Term6, 0, 8}, {3, prim.ToAll, 0, 2},
	// terminal group 1
	{4, prim.TermGroup, prim.TermGroup1Block, 0}, {4, prim.Term1, 0, 5}, {4, prim.Term2, 0, 6}, {4, prim.Term3, 0, 7}, {4, prim.ToAll, 0, 12},
	{5, prim.Term1, prim.Term1Block, 12},
	{6, prim.Term2, prim.Term2Block, 12},
	{7, prim.Term3, prim.Term3Block, 12},
	// terminal group 2
	{8, prim.TermGroup, prim.TermGroup2Enter1Block, 0}, {8, prim.Term4, 0, 9}, {8, prim.Term5, 0, 10}, {8, prim.Term6, 0, 11}, {8, prim.ToAll, 0, 13},
	{9, prim.Term4, prim.Term4Block, 13},
	{10, prim.Term5, prim.Term5Block, 13},
	{11, prim.Term6, prim.Term6Block, 13},
	{12, prim.TermGroup, prim.TermGroup1Block, 0}, {12, prim.Hangar, 0, 1}, {12, prim.ToAll, 0, 16},
	{13, prim.TermGroup, prim.TermGroup2Exit1Block, 0}, {13, prim.Hangar, 0, 1}, {13, prim.ToAll, 0, 16},
	{14, prim.Helipad1, prim.Helipad1Block, 1},
	{15, prim.Helipad2, prim.Helipad2Block, 1},
	{16, prim.ToAll, prim.OutWayBlock, 17},
	{17, prim.ToAll, prim.OutWayBlock, 18},
	// takeoff
	{18, prim.Takeoff, prim.RunwayOutBlock, 19},
	{19, prim.StartTakeoff, prim.NothingBlock, 20},
	{20, prim.EndTakeoff, prim.NothingBlock, 0},
	// landing
	{21, prim.Flying, prim.NothingBlock, 28}, {21, prim.Landing, 0, 22}, {21, prim.HeliLanding, 0, 33},
	{22, prim.Landing, prim.RunwayInBlock, 23},
	{23, prim.ToAll, prim.RunwayInBlock, 24},
	{24, prim.EndLanding, prim.RunwayInBlock, 25}, {24, prim.ToAll, 0, 25},
	{25, prim.ToAll, prim.InWayBlock, 26},
	{26, prim.ToAll, prim.InWayBlock, 27},
	{27, prim.TermGroup, prim.AirportEntranceBlock, 0}, {27, prim.Hangar, 0, 1}, {27, prim.ToAll, 0, 3},
	// in air
	{28, prim.ToAll, prim.NothingBlock, 29},
	{29, prim.ToAll, prim.NothingBlock, 30},
	{30, prim.ToAll, prim.NothingBlock, 31},
	{31, prim.ToAll, prim.NothingBlock, 21},
	// helicopters
	{32, prim.HeliTakeoff, prim.NothingBlock, 0},
	{33, prim.HeliLanding, prim.PreHelipadBlock, 34},
	{34, prim.HeliEndLanding, prim.PreHelipadBlock, 35},
	{35, prim.TermGroup, prim.PreHelipadBlock, 0}, {35, prim.Helipad1, 0, 14}, {35, prim.Helipad2, 0, 15}, {35, prim.ToAll, 0, 1},
	prim.EndMarker,
}

// intercontinental is the largest airport: eight terminals in two groups,
// two hangars, two helipads, and two runways for each direction.
func intercontinental() prim.Layout {
	return prim.Layout{
		Name:        "intercontinental",
		Rows:        intercontinentalRows,
		MovingData:  intercontinentalMovingData,
		Terminals:   []int{2, 4, 4},
		Helipads:    []int{1, 2},
		EntryPoints: []prim.Position{41, 42, 39, 40},
		Flags:       prim.AllAircraft,
	}
}

var intercontinentalMovingData = []prim.MovingData{
	{8, 56, prim.ExactPos, prim.DirSE},                          // 00 In hangar 1
	{136, 56, prim.ExactPos, prim.DirSE},                        // 01 In hangar 2
	{8, 72, 0, prim.DirN},                                       // 02 Outside hangar 1
	{136, 72, 0, prim.DirN},                                     // 03 Outside hangar 2
	{56, 72, 0, prim.DirN},                                      // 04 Central taxiway
	{72, 72, 0, prim.DirN},                                      // 05 Terminal group chooser
	{40, 56, 0, prim.DirN},                                      // 06 Group 1 entrance
	{24, 40, prim.ExactPos, prim.DirSW},                         // 07 Terminal 1
	{40, 40, prim.ExactPos, prim.DirSW},                         // 08 Terminal 2
	{56, 40, prim.ExactPos, prim.DirSW},                         // 09 Terminal 3
	{72, 40, prim.ExactPos, prim.DirSW},                         // 10 Terminal 4
	{104, 56, 0, prim.DirN},                                     // 11 Group 2 entrance
	{88, 40, prim.ExactPos, prim.DirSW},                         // 12 Terminal 5
	{104, 40, prim.ExactPos, prim.DirSW},                        // 13 Terminal 6
	{120, 40, prim.ExactPos, prim.DirSW},                        // 14 Terminal 7
	{136, 40, prim.ExactPos, prim.DirSW},                        // 15 Terminal 8
	{56, 56, 0, prim.DirN},                                      // 16 Group 1 exit
	{120, 56, 0, prim.DirN},                                     // 17 Group 2 exit
	{40, 104, prim.ExactPos, prim.DirNE},                        // 18 Helipad 1
	{56, 104, prim.ExactPos, prim.DirNE},                        // 19 Helipad 2
	{24, 88, 0, prim.DirN},                                      // 20 Departure taxiway A
	{120, 88, 0, prim.DirN},                                     // 21 Departure taxiway B
	{8, 120, prim.ExactPos, prim.DirNE},                         // 22 Holding point, departure runway 1
	{-20, 120, prim.NoSpeedClamp, prim.DirN},                    // 23 Accelerate on runway 1
	{-79, 120, prim.NoSpeedClamp | prim.TakeoffMove, prim.DirN}, // 24 Take off from runway 1
	{136, 136, prim.ExactPos, prim.DirNE},                       // 25 Holding point, departure runway 2
	{-20, 136, prim.NoSpeedClamp, prim.DirN},                    // 26 Accelerate on runway 2
	{-79, 136, prim.NoSpeedClamp | prim.TakeoffMove, prim.DirN}, // 27 Take off from runway 2
	{241, 8, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},      // 28 Fly to landing position in air
	{152, 8, prim.NoSpeedClamp | prim.LandMove, prim.DirN},      // 29 Going down for land
	{8, 8, prim.NoSpeedClamp | prim.Brake, prim.DirN},           // 30 Landed on runway 1, brake
	{8, 8, 0, prim.DirN},                                        // 31 Turn around on runway 1
	{8, 24, 0, prim.DirN},                                       // 32 Taxi off runway 1
	{8, -8, prim.NoSpeedClamp | prim.Brake, prim.DirN},          // 33 Landed on runway 2, brake
	{8, -8, 0, prim.DirN},                                       // 34 Turn around on runway 2
	{136, -8, 0, prim.DirN},                                     // 35 Taxi off runway 2
	{136, 24, 0, prim.DirN},                                     // 36 Inbound taxiway 2
	{88, 88, 0, prim.DirN},                                      // 37 Arrival junction
	{24, 24, 0, prim.DirN},                                      // 38 Inbound taxiway 1
	{-31, 241, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 39 Holding pattern (north-east)
	{1, 1, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},        // 40 Holding pattern (north-west)
	{305, 1, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},      // 41 Holding pattern (south-west)
	{337, 113, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},    // 42 Holding pattern (south)
	{8, 72, prim.HeliRaise, prim.DirN},                          // 43 Helicopter takeoff
	{48, 104, prim.NoSpeedClamp | prim.SlowTurn, prim.DirN},     // 44 Above the helipads
	{48, 104, prim.HeliLower, prim.DirN},                        // 45 Helicopter landing
	{48, 88, 0, prim.DirN},                                      // 46 Pre-helipad junction
}

var intercontinentalRows = []prim.ElementRow{
	{0, prim.Hangar, prim.NothingBlock, 2},
	{1, prim.Hangar, prim.Hangar2AreaBlock, 3},
	{2, prim.TermGroup, prim.TaxiwayBusyBlock, 0}, {2, prim.Hangar, 0, 0}, {2, prim.Helipad1, 0, 18}, {2, prim.Helipad2, 0, 19},
	{2, prim.HeliTakeoff, 0, 43}, {2, prim.ToAll, 0, 4},
	{3, prim.TermGroup, prim.Hangar2AreaBlock, 0}, {3, prim.Hangar, 0, 1}, {3, prim.ToAll, 0, 4},
	{4, prim.TermGroup, prim.TaxiwayBusyBlock, 0}, {4, prim.Term1, 0, 6}, {4, prim.Term2, 0, 6}, {4, prim.Term3, 0, 6}, {4, prim.Term4, 0, 6},
	{4, prim.Term5, 0, 11}, {4, prim.Term6, 0, 11}, {4, prim.Term7, 0, 11}, {4, prim.Term8, 0, 11},
	{4, prim.Hangar, 0, 2}, {4, prim.Takeoff, 0, 20}, {4, prim.ToAll, 0, 5},
	// pick the first terminal group with a free entrance
	{5, prim.TermGroup, prim.TaxiwayBusyBlock, 0}, {5, prim.TermGroup, prim.TermGroup1Block, 0}, {5, prim.TermGroup, prim.TermGroup2Enter1Block, 1}, {5, prim.ToAll, 0, 4},
	// terminal group 1
	{6, prim.TermGroup, prim.TermGroup1Block, 0}, {6, prim.Term1, 0, 7}, {6, prim.Term2, 0, 8}, {6, prim.Term3, 0, 9}, {6, prim.Term4, 0, 10}, {6, prim.ToAll, 0, 16},
	{7, prim.Term1, prim.Term1Block, 16},
	{8, prim.Term2, prim.Term2Block, 16},
	{9, prim.Term3, prim.Term3Block, 16},
	{10, prim.Term4, prim.Term4Block, 16},
	// terminal group 2
	{11, prim.TermGroup, prim.TermGroup2Enter1Block, 0}, {11, prim.Term5, 0, 12}, {11, prim.Term6, 0, 13}, {11, prim.Term7, 0, 14}, {11, prim.Term8, 0, 15}, {11, prim.ToAll, 0, 17},
	{12, prim.Term5, prim.Term5Block, 17},
	{13, prim.Term6, prim.Term6Block, 17},
	{14, prim.Term7, prim.Term7Block, 17},
	{15, prim.Term8, prim.Term8Block, 17},
	{16, prim.TermGroup, prim.TermGroup1Block, 0}, {16, prim.Hangar, 0, 2}, {16, prim.ToAll, 0, 20},
	{17, prim.TermGroup, prim.TermGroup2Exit1Block, 0}, {17, prim.Hangar, 0, 3}, {17, prim.ToAll, 0, 21},
	{18, prim.Helipad1, prim.Helipad1Block, 2},
	{19, prim.Helipad2, prim.Helipad2Block, 2},
	{20, prim.ToAll, prim.OutWayBlock, 22},
	{21, prim.ToAll, prim.OutWay2Block, 25},
	// takeoff
	{22, prim.Takeoff, prim.RunwayOutBlock, 23},
	{23, prim.StartTakeoff, prim.NothingBlock, 24},
	{24, prim.EndTakeoff, prim.NothingBlock, 0},
	{25, prim.Takeoff, prim.RunwayOut2Block, 26},
	{26, prim.StartTakeoff, prim.NothingBlock, 27},
	{27, prim.EndTakeoff, prim.NothingBlock, 0},
	// landing, on whichever runway is free
	{28, prim.Flying, prim.NothingBlock, 39}, {28, prim.Landing, 0, 29}, {28, prim.HeliLanding, 0, 44},
	{29, prim.Landing, prim.RunwayInBlock, 30}, {29, prim.Landing, prim.RunwayIn2Block, 33},
	{30, prim.ToAll, prim.RunwayInBlock, 31},
	{31, prim.EndLanding, prim.RunwayInBlock, 32}, {31, prim.ToAll, 0, 32},
	{32, prim.ToAll, prim.InWayBlock, 38},
	{33, prim.ToAll, prim.RunwayIn2Block, 34},
	{34, prim.EndLanding, prim.RunwayIn2Block, 35}, {34, prim.ToAll, 0, 35},
	{35, prim.ToAll, prim.InWay2Block, 36},
	{36, prim.ToAll, prim.InWay2Block, 37},
	{37, prim.TermGroup, prim.AirportEntranceBlock, 0}, {37, prim.Hangar, 0, 3}, {37, prim.ToAll, 0, 5},
	{38, prim.ToAll, prim.InWayBlock, 37},
	// in air
	{39, prim.ToAll, prim.NothingBlock, 40},
	{40, prim.ToAll, prim.NothingBlock, 41},
	{41, prim.ToAll, prim.NothingBlock, 42},
	{42, prim.ToAll, prim.NothingBlock, 28},
	// helicopters
	{43, prim.HeliTakeoff, prim.NothingBlock, 0},
	{44, prim.HeliLanding, prim.PreHelipadBlock, 45},
	{45, prim.HeliEndLanding, prim.PreHelipadBlock, 46},
	{46, prim.TermGroup, prim.PreHelipadBlock, 0}, {46, prim.Helipad1, 0, 18}, {46, prim.Helipad2, 0, 19}, {46, prim.ToAll, 0, 2},
	prim.EndMarker,
}
