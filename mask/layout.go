package mask

import "image"

var landscape = Table{
	"piece_01_01": image.Pt(0, 0),
	"piece_01_02": image.Pt(66, 0),
	"piece_01_03": image.Pt(197, 0),
	"piece_01_04": image.Pt(268, 0),
	"piece_01_05": image.Pt(394, 0),
	"piece_01_06": image.Pt(470, 0),
	"piece_01_07": image.Pt(591, 0),
	"piece_01_08": image.Pt(668, 0),

	"piece_02_01": image.Pt(0, 87),
	"piece_02_02": image.Pt(90, 62),
	"piece_02_03": image.Pt(165, 88),
	"piece_02_04": image.Pt(292, 66),
	"piece_02_05": image.Pt(370, 87),
	"piece_02_06": image.Pt(491, 64),
	"piece_02_07": image.Pt(567, 84),
	"piece_02_08": image.Pt(698, 61),

	"piece_03_01": image.Pt(0, 154),
	"piece_03_02": image.Pt(66, 178),
	"piece_03_03": image.Pt(192, 153),
	"piece_03_04": image.Pt(271, 152),
	"piece_03_05": image.Pt(394, 170),
	"piece_03_06": image.Pt(469, 170),
	"piece_03_07": image.Pt(591, 149),
	"piece_03_08": image.Pt(669, 173),

	"piece_04_01": image.Pt(0, 271),
	"piece_04_02": image.Pt(90, 242),
	"piece_04_03": image.Pt(165, 267),
	"piece_04_04": image.Pt(293, 241),
	"piece_04_05": image.Pt(370, 266),
	"piece_04_06": image.Pt(494, 239),
	"piece_04_07": image.Pt(567, 266),
	"piece_04_08": image.Pt(696, 234),

	"piece_05_01": image.Pt(0, 332),
	"piece_05_02": image.Pt(65, 359),
	"piece_05_03": image.Pt(193, 335),
	"piece_05_04": image.Pt(270, 359),
	"piece_05_05": image.Pt(396, 335),
	"piece_05_06": image.Pt(467, 356),
	"piece_05_07": image.Pt(596, 330),
	"piece_05_08": image.Pt(673, 354),

	"piece_06_01": image.Pt(0, 448),
	"piece_06_02": image.Pt(89, 423),
	"piece_06_03": image.Pt(161, 420),
	"piece_06_04": image.Pt(295, 446),
	"piece_06_05": image.Pt(369, 448),
	"piece_06_06": image.Pt(495, 421),
	"piece_06_07": image.Pt(568, 444),
	"piece_06_08": image.Pt(700, 420),
}

var portrait = Table{
	"piece_01_01": image.Pt(0, 0),
	"piece_01_02": image.Pt(52, 0),
	"piece_01_03": image.Pt(167, 0),
	"piece_01_04": image.Pt(227, 0),
	"piece_01_05": image.Pt(348, 0),
	"piece_01_06": image.Pt(413, 0),

	"piece_02_01": image.Pt(0, 89),
	"piece_02_02": image.Pt(77, 65),
	"piece_02_03": image.Pt(141, 90),
	"piece_02_04": image.Pt(258, 66),
	"piece_02_05": image.Pt(323, 90),
	"piece_02_06": image.Pt(438, 66),

	"piece_03_01": image.Pt(0, 161),
	"piece_03_02": image.Pt(81, 193),
	"piece_03_03": image.Pt(167, 165),
	"piece_03_04": image.Pt(234, 192),
	"piece_03_05": image.Pt(348, 165),
	"piece_03_06": image.Pt(410, 197),

	"piece_04_01": image.Pt(0, 295),
	"piece_04_02": image.Pt(54, 270),
	"piece_04_03": image.Pt(141, 293),
	"piece_04_04": image.Pt(262, 271),
	"piece_04_05": image.Pt(349, 292),
	"piece_04_06": image.Pt(435, 268),

	"piece_05_01": image.Pt(0, 369),
	"piece_05_02": image.Pt(52, 396),
	"piece_05_03": image.Pt(166, 370),
	"piece_05_04": image.Pt(234, 394),
	"piece_05_05": image.Pt(327, 370),
	"piece_05_06": image.Pt(412, 394),

	"piece_06_01": image.Pt(0, 495),
	"piece_06_02": image.Pt(79, 467),
	"piece_06_03": image.Pt(143, 494),
	"piece_06_04": image.Pt(260, 469),
	"piece_06_05": image.Pt(328, 491),
	"piece_06_06": image.Pt(438, 470),

	"piece_07_01": image.Pt(0, 568),
	"piece_07_02": image.Pt(57, 596),
	"piece_07_03": image.Pt(172, 567),
	"piece_07_04": image.Pt(234, 591),
	"piece_07_05": image.Pt(354, 567),
	"piece_07_06": image.Pt(417, 591),

	"piece_08_01": image.Pt(0, 700),
	"piece_08_02": image.Pt(82, 673),
	"piece_08_03": image.Pt(146, 696),
	"piece_08_04": image.Pt(263, 669),
	"piece_08_05": image.Pt(328, 698),
	"piece_08_06": image.Pt(440, 668),
}
