package unsigned

// Small constants, U0 through U32.
var (
	U0  = FromUint64(0)
	U1  = FromUint64(1)
	U2  = FromUint64(2)
	U3  = FromUint64(3)
	U4  = FromUint64(4)
	U5  = FromUint64(5)
	U6  = FromUint64(6)
	U7  = FromUint64(7)
	U8  = FromUint64(8)
	U9  = FromUint64(9)
	U10 = FromUint64(10)
	U11 = FromUint64(11)
	U12 = FromUint64(12)
	U13 = FromUint64(13)
	U14 = FromUint64(14)
	U15 = FromUint64(15)
	U16 = FromUint64(16)
	U17 = FromUint64(17)
	U18 = FromUint64(18)
	U19 = FromUint64(19)
	U20 = FromUint64(20)
	U21 = FromUint64(21)
	U22 = FromUint64(22)
	U23 = FromUint64(23)
	U24 = FromUint64(24)
	U25 = FromUint64(25)
	U26 = FromUint64(26)
	U27 = FromUint64(27)
	U28 = FromUint64(28)
	U29 = FromUint64(29)
	U30 = FromUint64(30)
	U31 = FromUint64(31)
	U32 = FromUint64(32)
)
