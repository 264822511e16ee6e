package neighbourhood

// S26 concatenates, for each of the first 18 neighbour positions, the
// subset of the 26 neighbour positions that are themselves 26-adjacent to
// it. Positions 18-25 (the corner-diagonals) never appear as seeds here,
// since cond2's flood only ever starts from the first lit neighbour and
// the table only needs entries reachable from a 6- or 18-position seed.
// Reproduced exactly from the reference implementation.
var S26 = [171]int{
	1, 2, 3, 4, 6, 7, 8, 9, 10, 11, 12, 13, 18, 19, 20, 21, // U
	2, 3, 5, 6, 7, 8, 10, 11, 14, 15, 16, 18, 19, 22, 23, // N
	4, 5, 6, 7, 9, 10, 12, 14, 15, 17, 18, 20, 22, 24, // W
	4, 5, 6, 8, 9, 11, 13, 14, 16, 17, 19, 21, 23, 25, // E
	3, 5, 7, 8, 9, 12, 13, 15, 16, 17, 20, 21, 24, 25, // S
	3, 4, 10, 11, 12, 13, 14, 15, 16, 17, 22, 23, 24, 25, // D

	3, 7, 8, 10, 11, 18, 19, // U N
	4, 6, 9, 10, 12, 18, 20, // W U
	4, 6, 9, 11, 13, 19, 21, // E U
	3, 7, 8, 12, 13, 20, 21, // U S
	5, 6, 7, 14, 15, 18, 22, // W N
	5, 6, 8, 14, 16, 19, 23, // E N
	5, 7, 9, 15, 17, 20, 24, // W S
	5, 8, 9, 16, 17, 21, 25, // E S
	3, 10, 11, 15, 16, 22, 23, // D N
	4, 10, 12, 14, 17, 22, 24, // W D
	4, 11, 13, 14, 17, 23, 25, // E D
	3, 12, 13, 15, 16, 24, 25, // D S
}

// IDX26 gives the offsets into S26: the 26-adjacent neighbours of position
// i are S26[IDX26[i]:IDX26[i+1]]. Positions 18-25 have empty ranges.
var IDX26 = [27]int{0, 16, 31, 45, 59, 73, 87, 94, 101, 108, 115, 122, 129, 136, 143, 150, 157, 164, 171, 171, 171, 171, 171, 171, 171, 171, 171}

// S6_18 gives, for each of the 18 non-corner neighbour positions, the
// subset of positions within the 6-union-18 set that are 6-adjacent to it.
var S6_18 = [48]int{
	6, 7, 8, 9, // U
	6, 10, 11, 14, // N
	7, 10, 12, 15, // W
	8, 11, 13, 16, // E
	9, 12, 13, 17, // S
	14, 15, 16, 17, // D

	1, 0, // U N
	2, 0, // W U
	3, 0, // E U
	4, 0, // U S
	2, 1, // W N
	3, 1, // E N
	4, 2, // W S
	5, 1, // D N
	5, 2, // W D
	5, 3, // E D
	5, 4, // D S
}

// IDX6_18 gives the offsets into S6_18: the 6-adjacent neighbours of
// position i (within the 18-set) are S6_18[IDX6_18[i]:IDX6_18[i+1]].
var IDX6_18 = [19]int{0, 4, 8, 12, 16, 20, 24, 26, 28, 30, 32, 34, 36, 38, 40, 42, 44, 46, 48}
