package ospar

import "github.com/paulmach/orb"

// compAreas is the built-in table of OSPAR COMP assessment areas.
//
// Boundaries are coarse WGS84 digitisations of the 2023 COMP area product
// (ospar_comp_au_2023_01), detailed enough for spatial filtering of harvest
// queries but far below the resolution of the official shapefiles. Rings are
// closed; coordinates are lon/lat.
//
// The table is reference data: loaded once, never mutated.
var compAreas = []Region{
	{
		ID:   "NNS",
		Name: "Northern North Sea",
		Boundary: orb.MultiPolygon{{{
			{-2.8, 56.0}, {-1.5, 55.9}, {0.0, 56.0}, {1.5, 56.1}, {3.0, 56.2},
			{4.5, 56.3}, {6.0, 56.5}, {6.8, 57.0}, {7.0, 57.5}, {7.0, 58.0},
			{7.0, 58.5}, {6.8, 59.0}, {6.4, 59.5}, {5.8, 60.0}, {5.0, 60.5},
			{4.2, 61.0}, {3.2, 61.3}, {2.0, 61.5}, {0.8, 61.4}, {-0.4, 61.0},
			{-1.2, 60.4}, {-1.8, 59.7}, {-2.2, 59.0}, {-2.5, 58.3}, {-2.7, 57.6},
			{-2.9, 56.9}, {-2.9, 56.4}, {-2.8, 56.0},
		}}},
	},
	{
		ID:   "SNS",
		Name: "Southern North Sea",
		Boundary: orb.MultiPolygon{{{
			{-1.5, 51.1}, {0.0, 51.0}, {1.4, 51.0}, {2.4, 51.1}, {3.3, 51.4},
			{4.0, 51.8}, {4.6, 52.3}, {5.0, 52.9}, {5.6, 53.3}, {6.5, 53.5},
			{7.4, 53.7}, {7.9, 54.1}, {8.0, 54.7}, {8.0, 55.3}, {7.0, 55.6},
			{5.5, 55.8}, {4.0, 55.9}, {2.5, 55.9}, {1.0, 55.7}, {-0.2, 55.2},
			{-1.1, 54.6}, {-1.6, 53.9}, {-1.8, 53.2}, {-1.8, 52.4}, {-1.7, 51.7},
			{-1.5, 51.1},
		}}},
	},
	{
		ID:   "ENS",
		Name: "Eastern North Sea",
		Boundary: orb.MultiPolygon{{{
			{6.2, 55.3}, {7.0, 55.2}, {7.8, 55.3}, {8.2, 55.7}, {8.4, 56.2},
			{8.4, 56.8}, {8.3, 57.3}, {8.0, 57.8}, {7.3, 58.0}, {6.6, 57.9},
			{6.1, 57.5}, {5.9, 56.9}, {5.9, 56.3}, {6.0, 55.8}, {6.2, 55.3},
		}}},
	},
	{
		ID:   "GB",
		Name: "German Bight",
		Boundary: orb.MultiPolygon{{{
			{6.4, 53.5}, {7.2, 53.5}, {8.0, 53.6}, {8.7, 53.9}, {9.0, 54.3},
			{9.0, 54.8}, {8.8, 55.2}, {8.3, 55.4}, {7.6, 55.4}, {6.9, 55.2},
			{6.4, 54.8}, {6.2, 54.3}, {6.2, 53.9}, {6.4, 53.5},
		}}},
	},
	{
		ID:   "KAT",
		Name: "Kattegat",
		Boundary: orb.MultiPolygon{{{
			{10.0, 55.6}, {10.8, 55.5}, {11.6, 55.6}, {12.3, 55.9}, {12.6, 56.4},
			{12.5, 57.0}, {12.1, 57.6}, {11.5, 58.0}, {10.8, 58.1}, {10.2, 57.8},
			{9.9, 57.2}, {9.8, 56.6}, {9.9, 56.0}, {10.0, 55.6},
		}}},
	},
	{
		ID:   "SKA",
		Name: "Skagerrak",
		Boundary: orb.MultiPolygon{{{
			{7.2, 57.2}, {8.2, 57.1}, {9.2, 57.2}, {10.2, 57.5}, {11.0, 57.9},
			{11.4, 58.4}, {11.2, 58.9}, {10.4, 59.1}, {9.4, 59.0}, {8.5, 58.7},
			{7.8, 58.3}, {7.3, 57.8}, {7.2, 57.2},
		}}},
	},
	{
		ID:   "NT",
		Name: "Norwegian Trench",
		Boundary: orb.MultiPolygon{{{
			{4.6, 57.6}, {5.6, 57.7}, {6.6, 58.0}, {7.4, 58.5}, {7.8, 59.1},
			{7.6, 59.7}, {7.0, 60.2}, {6.3, 60.7}, {5.6, 61.2}, {4.9, 61.6},
			{4.1, 61.8}, {3.5, 61.5}, {3.4, 60.9}, {3.7, 60.3}, {4.0, 59.7},
			{4.2, 59.1}, {4.3, 58.5}, {4.4, 58.0}, {4.6, 57.6},
		}}},
	},
	{
		ID:   "ECH",
		Name: "English Channel",
		Boundary: orb.MultiPolygon{{{
			{-5.2, 48.6}, {-4.0, 48.7}, {-2.8, 48.8}, {-1.8, 49.0}, {-1.0, 49.3},
			{-0.2, 49.5}, {0.6, 49.8}, {1.2, 50.1}, {1.6, 50.5}, {1.5, 50.9},
			{0.8, 51.1}, {-0.2, 51.0}, {-1.2, 50.8}, {-2.2, 50.6}, {-3.2, 50.4},
			{-4.2, 50.2}, {-5.0, 49.9}, {-5.5, 49.4}, {-5.5, 48.9}, {-5.2, 48.6},
		}}},
	},
	{
		ID:   "IRS",
		Name: "Irish Sea",
		Boundary: orb.MultiPolygon{{{
			{-6.4, 52.0}, {-5.6, 51.9}, {-4.8, 52.0}, {-4.2, 52.4}, {-3.8, 53.0},
			{-3.4, 53.5}, {-3.2, 54.0}, {-3.4, 54.5}, {-3.9, 54.9}, {-4.6, 55.2},
			{-5.3, 55.3}, {-5.9, 55.0}, {-6.2, 54.5}, {-6.3, 54.0}, {-6.4, 53.4},
			{-6.5, 52.9}, {-6.5, 52.4}, {-6.4, 52.0},
		}}},
	},
	{
		ID:   "CS",
		Name: "Celtic Sea",
		Boundary: orb.MultiPolygon{{{
			{-10.8, 48.2}, {-9.4, 48.3}, {-8.0, 48.5}, {-6.8, 48.8}, {-5.8, 49.2},
			{-5.2, 49.8}, {-5.0, 50.4}, {-5.3, 51.0}, {-6.0, 51.5}, {-7.0, 51.8},
			{-8.2, 51.9}, {-9.4, 51.7}, {-10.4, 51.2}, {-11.0, 50.5}, {-11.2, 49.7},
			{-11.1, 48.9}, {-10.8, 48.2},
		}}},
	},
	{
		ID:   "ATL",
		Name: "Atlantic",
		Boundary: orb.MultiPolygon{
			{{
				{-15.8, 51.2}, {-14.4, 51.0}, {-13.0, 51.1}, {-11.8, 51.5}, {-11.0, 52.1},
				{-10.6, 52.8}, {-10.5, 53.5}, {-10.7, 54.2}, {-11.2, 54.9}, {-12.0, 55.4},
				{-13.0, 55.7}, {-14.2, 55.7}, {-15.3, 55.3}, {-16.0, 54.6}, {-16.3, 53.8},
				{-16.3, 53.0}, {-16.1, 52.1}, {-15.8, 51.2},
			}},
			{{
				{-13.5, 56.2}, {-12.2, 56.0}, {-10.9, 56.1}, {-9.8, 56.5}, {-8.9, 57.0},
				{-8.2, 57.6}, {-7.7, 58.2}, {-7.4, 58.9}, {-7.5, 59.6}, {-8.1, 60.1},
				{-9.1, 60.4}, {-10.3, 60.4}, {-11.5, 60.1}, {-12.6, 59.5}, {-13.4, 58.8},
				{-13.9, 58.0}, {-14.0, 57.2}, {-13.5, 56.2},
			}},
		},
	},
	{
		ID:   "BISC",
		Name: "Bay of Biscay",
		Boundary: orb.MultiPolygon{{{
			{-9.8, 43.6}, {-8.4, 43.5}, {-7.0, 43.6}, {-5.6, 43.7}, {-4.2, 43.7},
			{-2.8, 43.6}, {-1.8, 43.8}, {-1.4, 44.4}, {-1.3, 45.1}, {-1.4, 45.8},
			{-1.8, 46.5}, {-2.4, 47.1}, {-3.2, 47.6}, {-4.2, 48.0}, {-5.4, 48.2},
			{-6.6, 48.2}, {-7.8, 48.0}, {-8.9, 47.5}, {-9.7, 46.8}, {-10.2, 46.0},
			{-10.4, 45.1}, {-10.3, 44.3}, {-9.8, 43.6},
		}}},
	},
}
