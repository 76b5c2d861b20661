package words

// This file has been generated -- you probably should NOT EDIT IT !
//
// Dense word-break property table, generated from WordBreakProperty.txt
// of the Unicode Character Database. Entry i covers the code points
// from its lo up to, but not including, the lo of entry i+1; the
// final entry extends through 0x10FFFF. Code points of unassigned
// gaps carry the class Other.

var wordBreakRanges = []wbRange{
	{0x0000, Other}, {0x000A, LF}, {0x000B, Newline}, {0x000D, CR},
	{0x000E, Other}, {0x0020, WSegSpace}, {0x0021, Other}, {0x0022, Double_Quote},
	{0x0023, Other}, {0x0027, Single_Quote}, {0x0028, Other}, {0x002C, MidNum},
	{0x002D, Other}, {0x002E, MidNumLet}, {0x002F, Other}, {0x0030, Numeric},
	{0x003A, MidLetter}, {0x003B, MidNum}, {0x003C, Other}, {0x0041, ALetter},
	{0x005B, Other}, {0x005F, ExtendNumLet}, {0x0060, Other}, {0x0061, ALetter},
	{0x007B, Other}, {0x0085, Newline}, {0x0086, Other}, {0x00AA, ALetter},
	{0x00AB, Other}, {0x00AD, Format}, {0x00AE, Other}, {0x00B5, ALetter},
	{0x00B6, Other}, {0x00B7, MidLetter}, {0x00B8, Other}, {0x00BA, ALetter},
	{0x00BB, Other}, {0x00C0, ALetter}, {0x00D7, Other}, {0x00D8, ALetter},
	{0x00F7, Other}, {0x00F8, ALetter}, {0x02C2, Other}, {0x02C6, ALetter},
	{0x02D2, Other}, {0x02E0, ALetter}, {0x02E5, Other}, {0x02EC, ALetter},
	{0x02ED, Other}, {0x02EE, ALetter}, {0x02EF, Other}, {0x0300, Extend},
	{0x0370, ALetter}, {0x0375, Other}, {0x0376, ALetter}, {0x0378, Other},
	{0x037A, ALetter}, {0x037E, MidNum}, {0x037F, ALetter}, {0x0380, Other},
	{0x0386, ALetter}, {0x0387, MidLetter}, {0x0388, ALetter}, {0x038B, Other},
	{0x038C, ALetter}, {0x038D, Other}, {0x038E, ALetter}, {0x03A2, Other},
	{0x03A3, ALetter}, {0x03F6, Other}, {0x03F7, ALetter}, {0x0482, Other},
	{0x0483, Extend}, {0x048A, ALetter}, {0x0530, Other}, {0x0531, ALetter},
	{0x0557, Other}, {0x0559, ALetter}, {0x055D, Other}, {0x055E, ALetter},
	{0x055F, MidLetter}, {0x0560, ALetter}, {0x0589, MidNum}, {0x058A, Other},
	{0x0591, Extend}, {0x05BE, Other}, {0x05BF, Extend}, {0x05C0, Other},
	{0x05C1, Extend}, {0x05C3, Other}, {0x05C4, Extend}, {0x05C6, Other},
	{0x05C7, Extend}, {0x05C8, Other}, {0x05D0, Hebrew_Letter}, {0x05EB, Other},
	{0x05EF, Hebrew_Letter}, {0x05F3, ALetter}, {0x05F4, MidLetter}, {0x05F5, Other},
	{0x0600, Format}, {0x0606, Other}, {0x060C, MidNum}, {0x060E, Other},
	{0x0610, Extend}, {0x061B, Other}, {0x061C, Format}, {0x061D, Other},
	{0x0620, ALetter}, {0x064B, Extend}, {0x0660, Numeric}, {0x066A, Other},
	{0x066B, Numeric}, {0x066D, Other}, {0x066E, ALetter}, {0x0670, Extend},
	{0x0671, ALetter}, {0x06D4, Other}, {0x06D5, ALetter}, {0x06D6, Extend},
	{0x06DD, Format}, {0x06DE, Other}, {0x06DF, Extend}, {0x06E5, ALetter},
	{0x06E7, Extend}, {0x06E9, Other}, {0x06EA, Extend}, {0x06EE, ALetter},
	{0x06F0, Numeric}, {0x06FA, ALetter}, {0x06FD, Other}, {0x06FF, ALetter},
	{0x0700, Other}, {0x070F, Format}, {0x0710, ALetter}, {0x0711, Extend},
	{0x0712, ALetter}, {0x0730, Extend}, {0x074B, Other}, {0x074D, ALetter},
	{0x07A6, Extend}, {0x07B1, ALetter}, {0x07B2, Other}, {0x07C0, Numeric},
	{0x07CA, ALetter}, {0x07EB, Extend}, {0x07F4, ALetter}, {0x07F6, Other},
	{0x07FA, ALetter}, {0x07FB, Other}, {0x07FD, Extend}, {0x07FE, Other},
	{0x0800, ALetter}, {0x0816, Extend}, {0x081A, ALetter}, {0x081B, Extend},
	{0x0824, ALetter}, {0x0825, Extend}, {0x0828, ALetter}, {0x0829, Extend},
	{0x082E, Other}, {0x0840, ALetter}, {0x0859, Extend}, {0x085C, Other},
	{0x0860, ALetter}, {0x086B, Other}, {0x0870, ALetter}, {0x0888, Other},
	{0x0889, ALetter}, {0x088F, Other}, {0x0890, Format}, {0x0892, Other},
	{0x0898, Extend}, {0x08A0, ALetter}, {0x08CA, Extend}, {0x08E2, Format},
	{0x08E3, Extend}, {0x0904, ALetter}, {0x093A, Extend}, {0x093D, ALetter},
	{0x093E, Extend}, {0x0950, ALetter}, {0x0951, Extend}, {0x0958, ALetter},
	{0x0962, Extend}, {0x0964, Other}, {0x0966, Numeric}, {0x0970, Other},
	{0x0971, ALetter}, {0x0981, Extend}, {0x0984, Other}, {0x0985, ALetter},
	{0x098D, Other}, {0x098F, ALetter}, {0x0991, Other}, {0x0993, ALetter},
	{0x09A9, Other}, {0x09AA, ALetter}, {0x09B1, Other}, {0x09B2, ALetter},
	{0x09B3, Other}, {0x09B6, ALetter}, {0x09BA, Other}, {0x09BC, Extend},
	{0x09BD, ALetter}, {0x09BE, Extend}, {0x09C5, Other}, {0x09C7, Extend},
	{0x09C9, Other}, {0x09CB, Extend}, {0x09CE, ALetter}, {0x09CF, Other},
	{0x09D7, Extend}, {0x09D8, Other}, {0x09DC, ALetter}, {0x09DE, Other},
	{0x09DF, ALetter}, {0x09E2, Extend}, {0x09E4, Other}, {0x09E6, Numeric},
	{0x09F0, ALetter}, {0x09F2, Other}, {0x09FC, ALetter}, {0x09FD, Other},
	{0x09FE, Extend}, {0x09FF, Other}, {0x0A01, Extend}, {0x0A04, Other},
	{0x0A05, ALetter}, {0x0A0B, Other}, {0x0A0F, ALetter}, {0x0A11, Other},
	{0x0A13, ALetter}, {0x0A29, Other}, {0x0A2A, ALetter}, {0x0A31, Other},
	{0x0A32, ALetter}, {0x0A34, Other}, {0x0A35, ALetter}, {0x0A37, Other},
	{0x0A38, ALetter}, {0x0A3A, Other}, {0x0A3C, Extend}, {0x0A3D, Other},
	{0x0A3E, Extend}, {0x0A43, Other}, {0x0A47, Extend}, {0x0A49, Other},
	{0x0A4B, Extend}, {0x0A4E, Other}, {0x0A51, Extend}, {0x0A52, Other},
	{0x0A59, ALetter}, {0x0A5D, Other}, {0x0A5E, ALetter}, {0x0A5F, Other},
	{0x0A66, Numeric}, {0x0A70, Extend}, {0x0A72, ALetter}, {0x0A75, Extend},
	{0x0A76, Other}, {0x0A81, Extend}, {0x0A84, Other}, {0x0A85, ALetter},
	{0x0A8E, Other}, {0x0A8F, ALetter}, {0x0A92, Other}, {0x0A93, ALetter},
	{0x0AA9, Other}, {0x0AAA, ALetter}, {0x0AB1, Other}, {0x0AB2, ALetter},
	{0x0AB4, Other}, {0x0AB5, ALetter}, {0x0ABA, Other}, {0x0ABC, Extend},
	{0x0ABD, ALetter}, {0x0ABE, Extend}, {0x0AC6, Other}, {0x0AC7, Extend},
	{0x0ACA, Other}, {0x0ACB, Extend}, {0x0ACE, Other}, {0x0AD0, ALetter},
	{0x0AD1, Other}, {0x0AE0, ALetter}, {0x0AE2, Extend}, {0x0AE4, Other},
	{0x0AE6, Numeric}, {0x0AF0, Other}, {0x0AF9, ALetter}, {0x0AFA, Extend},
	{0x0B00, Other}, {0x0B01, Extend}, {0x0B04, Other}, {0x0B05, ALetter},
	{0x0B0D, Other}, {0x0B0F, ALetter}, {0x0B11, Other}, {0x0B13, ALetter},
	{0x0B29, Other}, {0x0B2A, ALetter}, {0x0B31, Other}, {0x0B32, ALetter},
	{0x0B34, Other}, {0x0B35, ALetter}, {0x0B3A, Other}, {0x0B3C, Extend},
	{0x0B3D, ALetter}, {0x0B3E, Extend}, {0x0B45, Other}, {0x0B47, Extend},
	{0x0B49, Other}, {0x0B4B, Extend}, {0x0B4E, Other}, {0x0B55, Extend},
	{0x0B58, Other}, {0x0B5C, ALetter}, {0x0B5E, Other}, {0x0B5F, ALetter},
	{0x0B62, Extend}, {0x0B64, Other}, {0x0B66, Numeric}, {0x0B70, Other},
	{0x0B71, ALetter}, {0x0B72, Other}, {0x0B82, Extend}, {0x0B83, ALetter},
	{0x0B84, Other}, {0x0B85, ALetter}, {0x0B8B, Other}, {0x0B8E, ALetter},
	{0x0B91, Other}, {0x0B92, ALetter}, {0x0B96, Other}, {0x0B99, ALetter},
	{0x0B9B, Other}, {0x0B9C, ALetter}, {0x0B9D, Other}, {0x0B9E, ALetter},
	{0x0BA0, Other}, {0x0BA3, ALetter}, {0x0BA5, Other}, {0x0BA8, ALetter},
	{0x0BAB, Other}, {0x0BAE, ALetter}, {0x0BBA, Other}, {0x0BBE, Extend},
	{0x0BC3, Other}, {0x0BC6, Extend}, {0x0BC9, Other}, {0x0BCA, Extend},
	{0x0BCE, Other}, {0x0BD0, ALetter}, {0x0BD1, Other}, {0x0BD7, Extend},
	{0x0BD8, Other}, {0x0BE6, Numeric}, {0x0BF0, Other}, {0x0C00, Extend},
	{0x0C05, ALetter}, {0x0C0D, Other}, {0x0C0E, ALetter}, {0x0C11, Other},
	{0x0C12, ALetter}, {0x0C29, Other}, {0x0C2A, ALetter}, {0x0C3A, Other},
	{0x0C3C, Extend}, {0x0C3D, ALetter}, {0x0C3E, Extend}, {0x0C45, Other},
	{0x0C46, Extend}, {0x0C49, Other}, {0x0C4A, Extend}, {0x0C4E, Other},
	{0x0C55, Extend}, {0x0C57, Other}, {0x0C58, ALetter}, {0x0C5B, Other},
	{0x0C5D, ALetter}, {0x0C5E, Other}, {0x0C60, ALetter}, {0x0C62, Extend},
	{0x0C64, Other}, {0x0C66, Numeric}, {0x0C70, Other}, {0x0C80, ALetter},
	{0x0C81, Extend}, {0x0C84, Other}, {0x0C85, ALetter}, {0x0C8D, Other},
	{0x0C8E, ALetter}, {0x0C91, Other}, {0x0C92, ALetter}, {0x0CA9, Other},
	{0x0CAA, ALetter}, {0x0CB4, Other}, {0x0CB5, ALetter}, {0x0CBA, Other},
	{0x0CBC, Extend}, {0x0CBD, ALetter}, {0x0CBE, Extend}, {0x0CC5, Other},
	{0x0CC6, Extend}, {0x0CC9, Other}, {0x0CCA, Extend}, {0x0CCE, Other},
	{0x0CD5, Extend}, {0x0CD7, Other}, {0x0CDD, ALetter}, {0x0CDF, Other},
	{0x0CE0, ALetter}, {0x0CE2, Extend}, {0x0CE4, Other}, {0x0CE6, Numeric},
	{0x0CF0, Other}, {0x0CF1, ALetter}, {0x0CF3, Other}, {0x0D00, Extend},
	{0x0D04, ALetter}, {0x0D0D, Other}, {0x0D0E, ALetter}, {0x0D11, Other},
	{0x0D12, ALetter}, {0x0D3B, Extend}, {0x0D3D, ALetter}, {0x0D3E, Extend},
	{0x0D45, Other}, {0x0D46, Extend}, {0x0D49, Other}, {0x0D4A, Extend},
	{0x0D4E, ALetter}, {0x0D4F, Other}, {0x0D54, ALetter}, {0x0D57, Extend},
	{0x0D58, Other}, {0x0D5F, ALetter}, {0x0D62, Extend}, {0x0D64, Other},
	{0x0D66, Numeric}, {0x0D70, Other}, {0x0D7A, ALetter}, {0x0D80, Other},
	{0x0D81, Extend}, {0x0D84, Other}, {0x0D85, ALetter}, {0x0D97, Other},
	{0x0D9A, ALetter}, {0x0DB2, Other}, {0x0DB3, ALetter}, {0x0DBC, Other},
	{0x0DBD, ALetter}, {0x0DBE, Other}, {0x0DC0, ALetter}, {0x0DC7, Other},
	{0x0DCA, Extend}, {0x0DCB, Other}, {0x0DCF, Extend}, {0x0DD5, Other},
	{0x0DD6, Extend}, {0x0DD7, Other}, {0x0DD8, Extend}, {0x0DE0, Other},
	{0x0DE6, Numeric}, {0x0DF0, Other}, {0x0DF2, Extend}, {0x0DF4, Other},
	{0x0E31, Extend}, {0x0E32, Other}, {0x0E34, Extend}, {0x0E3B, Other},
	{0x0E47, Extend}, {0x0E4F, Other}, {0x0E50, Numeric}, {0x0E5A, Other},
	{0x0EB1, Extend}, {0x0EB2, Other}, {0x0EB4, Extend}, {0x0EBD, Other},
	{0x0EC8, Extend}, {0x0ECF, Other}, {0x0ED0, Numeric}, {0x0EDA, Other},
	{0x0F00, ALetter}, {0x0F01, Other}, {0x0F18, Extend}, {0x0F1A, Other},
	{0x0F20, Numeric}, {0x0F2A, Other}, {0x0F35, Extend}, {0x0F36, Other},
	{0x0F37, Extend}, {0x0F38, Other}, {0x0F39, Extend}, {0x0F3A, Other},
	{0x0F3E, Extend}, {0x0F40, ALetter}, {0x0F48, Other}, {0x0F49, ALetter},
	{0x0F6D, Other}, {0x0F71, Extend}, {0x0F85, Other}, {0x0F86, Extend},
	{0x0F88, ALetter}, {0x0F8D, Extend}, {0x0F98, Other}, {0x0F99, Extend},
	{0x0FBD, Other}, {0x0FC6, Extend}, {0x0FC7, Other}, {0x102B, Extend},
	{0x103F, Other}, {0x1040, Numeric}, {0x104A, Other}, {0x1056, Extend},
	{0x105A, Other}, {0x105E, Extend}, {0x1061, Other}, {0x1062, Extend},
	{0x1065, Other}, {0x1067, Extend}, {0x106E, Other}, {0x1071, Extend},
	{0x1075, Other}, {0x1082, Extend}, {0x108E, Other}, {0x108F, Extend},
	{0x1090, Numeric}, {0x109A, Extend}, {0x109E, Other}, {0x10A0, ALetter},
	{0x10C6, Other}, {0x10C7, ALetter}, {0x10C8, Other}, {0x10CD, ALetter},
	{0x10CE, Other}, {0x10D0, ALetter}, {0x10FB, Other}, {0x10FC, ALetter},
	{0x1249, Other}, {0x124A, ALetter}, {0x124E, Other}, {0x1250, ALetter},
	{0x1257, Other}, {0x1258, ALetter}, {0x1259, Other}, {0x125A, ALetter},
	{0x125E, Other}, {0x1260, ALetter}, {0x1289, Other}, {0x128A, ALetter},
	{0x128E, Other}, {0x1290, ALetter}, {0x12B1, Other}, {0x12B2, ALetter},
	{0x12B6, Other}, {0x12B8, ALetter}, {0x12BF, Other}, {0x12C0, ALetter},
	{0x12C1, Other}, {0x12C2, ALetter}, {0x12C6, Other}, {0x12C8, ALetter},
	{0x12D7, Other}, {0x12D8, ALetter}, {0x1311, Other}, {0x1312, ALetter},
	{0x1316, Other}, {0x1318, ALetter}, {0x135B, Other}, {0x135D, Extend},
	{0x1360, Other}, {0x1380, ALetter}, {0x1390, Other}, {0x13A0, ALetter},
	{0x13F6, Other}, {0x13F8, ALetter}, {0x13FE, Other}, {0x1401, ALetter},
	{0x166D, Other}, {0x166F, ALetter}, {0x1680, WSegSpace}, {0x1681, ALetter},
	{0x169B, Other}, {0x16A0, ALetter}, {0x16EB, Other}, {0x16EE, ALetter},
	{0x16F9, Other}, {0x1700, ALetter}, {0x1712, Extend}, {0x1716, Other},
	{0x171F, ALetter}, {0x1732, Extend}, {0x1735, Other}, {0x1740, ALetter},
	{0x1752, Extend}, {0x1754, Other}, {0x1760, ALetter}, {0x176D, Other},
	{0x176E, ALetter}, {0x1771, Other}, {0x1772, Extend}, {0x1774, Other},
	{0x17B4, Extend}, {0x17D4, Other}, {0x17DD, Extend}, {0x17DE, Other},
	{0x17E0, Numeric}, {0x17EA, Other}, {0x180B, Extend}, {0x180E, Format},
	{0x180F, Extend}, {0x1810, Numeric}, {0x181A, Other}, {0x1820, ALetter},
	{0x1879, Other}, {0x1880, ALetter}, {0x1885, Extend}, {0x1887, ALetter},
	{0x18A9, Extend}, {0x18AA, ALetter}, {0x18AB, Other}, {0x18B0, ALetter},
	{0x18F6, Other}, {0x1900, ALetter}, {0x191F, Other}, {0x1920, Extend},
	{0x192C, Other}, {0x1930, Extend}, {0x193C, Other}, {0x1946, Numeric},
	{0x1950, Other}, {0x19D0, Numeric}, {0x19DA, Other}, {0x1A00, ALetter},
	{0x1A17, Extend}, {0x1A1C, Other}, {0x1A55, Extend}, {0x1A5F, Other},
	{0x1A60, Extend}, {0x1A7D, Other}, {0x1A7F, Extend}, {0x1A80, Numeric},
	{0x1A8A, Other}, {0x1A90, Numeric}, {0x1A9A, Other}, {0x1AB0, Extend},
	{0x1ACF, Other}, {0x1B00, Extend}, {0x1B05, ALetter}, {0x1B34, Extend},
	{0x1B45, ALetter}, {0x1B4D, Other}, {0x1B50, Numeric}, {0x1B5A, Other},
	{0x1B6B, Extend}, {0x1B74, Other}, {0x1B80, Extend}, {0x1B83, ALetter},
	{0x1BA1, Extend}, {0x1BAE, ALetter}, {0x1BB0, Numeric}, {0x1BBA, ALetter},
	{0x1BE6, Extend}, {0x1BF4, Other}, {0x1C00, ALetter}, {0x1C24, Extend},
	{0x1C38, Other}, {0x1C40, Numeric}, {0x1C4A, Other}, {0x1C4D, ALetter},
	{0x1C50, Numeric}, {0x1C5A, ALetter}, {0x1C7E, Other}, {0x1C80, ALetter},
	{0x1C89, Other}, {0x1C90, ALetter}, {0x1CBB, Other}, {0x1CBD, ALetter},
	{0x1CC0, Other}, {0x1CD0, Extend}, {0x1CD3, Other}, {0x1CD4, Extend},
	{0x1CE9, ALetter}, {0x1CED, Extend}, {0x1CEE, ALetter}, {0x1CF4, Extend},
	{0x1CF5, ALetter}, {0x1CF7, Extend}, {0x1CFA, ALetter}, {0x1CFB, Other},
	{0x1D00, ALetter}, {0x1DC0, Extend}, {0x1E00, ALetter}, {0x1F16, Other},
	{0x1F18, ALetter}, {0x1F1E, Other}, {0x1F20, ALetter}, {0x1F46, Other},
	{0x1F48, ALetter}, {0x1F4E, Other}, {0x1F50, ALetter}, {0x1F58, Other},
	{0x1F59, ALetter}, {0x1F5A, Other}, {0x1F5B, ALetter}, {0x1F5C, Other},
	{0x1F5D, ALetter}, {0x1F5E, Other}, {0x1F5F, ALetter}, {0x1F7E, Other},
	{0x1F80, ALetter}, {0x1FB5, Other}, {0x1FB6, ALetter}, {0x1FBD, Other},
	{0x1FBE, ALetter}, {0x1FBF, Other}, {0x1FC2, ALetter}, {0x1FC5, Other},
	{0x1FC6, ALetter}, {0x1FCD, Other}, {0x1FD0, ALetter}, {0x1FD4, Other},
	{0x1FD6, ALetter}, {0x1FDC, Other}, {0x1FE0, ALetter}, {0x1FED, Other},
	{0x1FF2, ALetter}, {0x1FF5, Other}, {0x1FF6, ALetter}, {0x1FFD, Other},
	{0x2000, WSegSpace}, {0x2007, Other}, {0x2008, WSegSpace}, {0x200B, Other},
	{0x200C, Extend}, {0x200D, ZWJ}, {0x200E, Format}, {0x2010, Other},
	{0x2018, MidNumLet}, {0x201A, Other}, {0x2024, MidNumLet}, {0x2025, Other},
	{0x2027, MidLetter}, {0x2028, Newline}, {0x202A, Format}, {0x202F, ExtendNumLet},
	{0x2030, Other}, {0x203F, ExtendNumLet}, {0x2041, Other}, {0x2044, MidNum},
	{0x2045, Other}, {0x2054, ExtendNumLet}, {0x2055, Other}, {0x205F, WSegSpace},
	{0x2060, Format}, {0x2065, Other}, {0x2066, Format}, {0x2070, Other},
	{0x2071, ALetter}, {0x2072, Other}, {0x207F, ALetter}, {0x2080, Other},
	{0x2090, ALetter}, {0x209D, Other}, {0x20D0, Extend}, {0x20F1, Other},
	{0x2102, ALetter}, {0x2103, Other}, {0x2107, ALetter}, {0x2108, Other},
	{0x210A, ALetter}, {0x2114, Other}, {0x2115, ALetter}, {0x2116, Other},
	{0x2119, ALetter}, {0x211E, Other}, {0x2124, ALetter}, {0x2125, Other},
	{0x2126, ALetter}, {0x2127, Other}, {0x2128, ALetter}, {0x2129, Other},
	{0x212A, ALetter}, {0x212E, Other}, {0x212F, ALetter}, {0x213A, Other},
	{0x213C, ALetter}, {0x2140, Other}, {0x2145, ALetter}, {0x214A, Other},
	{0x214E, ALetter}, {0x214F, Other}, {0x2160, ALetter}, {0x2189, Other},
	{0x24B6, ALetter}, {0x24EA, Other}, {0x2C00, ALetter}, {0x2CE5, Other},
	{0x2CEB, ALetter}, {0x2CEF, Extend}, {0x2CF2, ALetter}, {0x2CF4, Other},
	{0x2D00, ALetter}, {0x2D26, Other}, {0x2D27, ALetter}, {0x2D28, Other},
	{0x2D2D, ALetter}, {0x2D2E, Other}, {0x2D30, ALetter}, {0x2D68, Other},
	{0x2D6F, ALetter}, {0x2D70, Other}, {0x2D7F, Extend}, {0x2D80, ALetter},
	{0x2D97, Other}, {0x2DA0, ALetter}, {0x2DA7, Other}, {0x2DA8, ALetter},
	{0x2DAF, Other}, {0x2DB0, ALetter}, {0x2DB7, Other}, {0x2DB8, ALetter},
	{0x2DBF, Other}, {0x2DC0, ALetter}, {0x2DC7, Other}, {0x2DC8, ALetter},
	{0x2DCF, Other}, {0x2DD0, ALetter}, {0x2DD7, Other}, {0x2DD8, ALetter},
	{0x2DDF, Other}, {0x2DE0, Extend}, {0x2E00, Other}, {0x2E2F, ALetter},
	{0x2E30, Other}, {0x3000, WSegSpace}, {0x3001, Other}, {0x3005, ALetter},
	{0x3006, Other}, {0x302A, Extend}, {0x3030, Other}, {0x3031, Katakana},
	{0x3036, Other}, {0x303B, ALetter}, {0x303D, Other}, {0x3099, Extend},
	{0x309B, Katakana}, {0x309D, Other}, {0x30A1, Katakana}, {0x30FB, Other},
	{0x30FC, Katakana}, {0x3100, Other}, {0x3105, ALetter}, {0x3130, Other},
	{0x3131, ALetter}, {0x318F, Other}, {0x31A0, ALetter}, {0x31C0, Other},
	{0x31F0, Katakana}, {0x3200, Other}, {0x32D0, Katakana}, {0x32FF, Other},
	{0x3300, Katakana}, {0x3358, Other}, {0xA000, ALetter}, {0xA48D, Other},
	{0xA4D0, ALetter}, {0xA4FE, Other}, {0xA500, ALetter}, {0xA60D, Other},
	{0xA610, ALetter}, {0xA620, Numeric}, {0xA62A, ALetter}, {0xA62C, Other},
	{0xA640, ALetter}, {0xA66F, Extend}, {0xA673, Other}, {0xA674, Extend},
	{0xA67E, Other}, {0xA67F, ALetter}, {0xA69E, Extend}, {0xA6A0, ALetter},
	{0xA6F0, Extend}, {0xA6F2, Other}, {0xA717, ALetter}, {0xA7CB, Other},
	{0xA7D0, ALetter}, {0xA7D2, Other}, {0xA7D3, ALetter}, {0xA7D4, Other},
	{0xA7D5, ALetter}, {0xA7DA, Other}, {0xA7F2, ALetter}, {0xA802, Extend},
	{0xA803, ALetter}, {0xA806, Extend}, {0xA807, ALetter}, {0xA80B, Extend},
	{0xA80C, ALetter}, {0xA823, Extend}, {0xA828, Other}, {0xA82C, Extend},
	{0xA82D, Other}, {0xA840, ALetter}, {0xA874, Other}, {0xA880, Extend},
	{0xA882, ALetter}, {0xA8B4, Extend}, {0xA8C6, Other}, {0xA8D0, Numeric},
	{0xA8DA, Other}, {0xA8E0, Extend}, {0xA8F2, ALetter}, {0xA8F8, Other},
	{0xA8FB, ALetter}, {0xA8FC, Other}, {0xA8FD, ALetter}, {0xA8FF, Extend},
	{0xA900, Numeric}, {0xA90A, ALetter}, {0xA926, Extend}, {0xA92E, Other},
	{0xA930, ALetter}, {0xA947, Extend}, {0xA954, Other}, {0xA960, ALetter},
	{0xA97D, Other}, {0xA980, Extend}, {0xA984, ALetter}, {0xA9B3, Extend},
	{0xA9C1, Other}, {0xA9CF, ALetter}, {0xA9D0, Numeric}, {0xA9DA, Other},
	{0xA9E5, Extend}, {0xA9E6, Other}, {0xA9F0, Numeric}, {0xA9FA, Other},
	{0xAA00, ALetter}, {0xAA29, Extend}, {0xAA37, Other}, {0xAA40, ALetter},
	{0xAA43, Extend}, {0xAA44, ALetter}, {0xAA4C, Extend}, {0xAA4E, Other},
	{0xAA50, Numeric}, {0xAA5A, Other}, {0xAA7B, Extend}, {0xAA7E, Other},
	{0xAAB0, Extend}, {0xAAB1, Other}, {0xAAB2, Extend}, {0xAAB5, Other},
	{0xAAB7, Extend}, {0xAAB9, Other}, {0xAABE, Extend}, {0xAAC0, Other},
	{0xAAC1, Extend}, {0xAAC2, Other}, {0xAAE0, ALetter}, {0xAAEB, Extend},
	{0xAAF0, Other}, {0xAAF2, ALetter}, {0xAAF5, Extend}, {0xAAF7, Other},
	{0xAB01, ALetter}, {0xAB07, Other}, {0xAB09, ALetter}, {0xAB0F, Other},
	{0xAB11, ALetter}, {0xAB17, Other}, {0xAB20, ALetter}, {0xAB27, Other},
	{0xAB28, ALetter}, {0xAB2F, Other}, {0xAB30, ALetter}, {0xAB6A, Other},
	{0xAB70, ALetter}, {0xABE3, Extend}, {0xABEB, Other}, {0xABEC, Extend},
	{0xABEE, Other}, {0xABF0, Numeric}, {0xABFA, Other}, {0xAC00, ALetter},
	{0xD7A4, Other}, {0xD7B0, ALetter}, {0xD7C7, Other}, {0xD7CB, ALetter},
	{0xD7FC, Other}, {0xFB00, ALetter}, {0xFB07, Other}, {0xFB13, ALetter},
	{0xFB18, Other}, {0xFB1D, Hebrew_Letter}, {0xFB1E, Extend}, {0xFB1F, Hebrew_Letter},
	{0xFB29, Other}, {0xFB2A, Hebrew_Letter}, {0xFB37, Other}, {0xFB38, Hebrew_Letter},
	{0xFB3D, Other}, {0xFB3E, Hebrew_Letter}, {0xFB3F, Other}, {0xFB40, Hebrew_Letter},
	{0xFB42, Other}, {0xFB43, Hebrew_Letter}, {0xFB45, Other}, {0xFB46, Hebrew_Letter},
	{0xFB50, ALetter}, {0xFBB2, Other}, {0xFBD3, ALetter}, {0xFD3E, Other},
	{0xFD50, ALetter}, {0xFD90, Other}, {0xFD92, ALetter}, {0xFDC8, Other},
	{0xFDF0, ALetter}, {0xFDFC, Other}, {0xFE00, Extend}, {0xFE10, MidNum},
	{0xFE11, Other}, {0xFE13, MidLetter}, {0xFE14, MidNum}, {0xFE15, Other},
	{0xFE20, Extend}, {0xFE30, Other}, {0xFE33, ExtendNumLet}, {0xFE35, Other},
	{0xFE4D, ExtendNumLet}, {0xFE50, MidNum}, {0xFE51, Other}, {0xFE52, MidNumLet},
	{0xFE53, Other}, {0xFE54, MidNum}, {0xFE55, MidLetter}, {0xFE56, Other},
	{0xFE70, ALetter}, {0xFE75, Other}, {0xFE76, ALetter}, {0xFEFD, Other},
	{0xFEFF, Format}, {0xFF00, Other}, {0xFF07, MidNumLet}, {0xFF08, Other},
	{0xFF0C, MidNum}, {0xFF0D, Other}, {0xFF0E, MidNumLet}, {0xFF0F, Other},
	{0xFF10, Numeric}, {0xFF1A, MidLetter}, {0xFF1B, MidNum}, {0xFF1C, Other},
	{0xFF21, ALetter}, {0xFF3B, Other}, {0xFF3F, ExtendNumLet}, {0xFF40, Other},
	{0xFF41, ALetter}, {0xFF5B, Other}, {0xFF66, Katakana}, {0xFF9E, Extend},
	{0xFFA0, ALetter}, {0xFFBF, Other}, {0xFFC2, ALetter}, {0xFFC8, Other},
	{0xFFCA, ALetter}, {0xFFD0, Other}, {0xFFD2, ALetter}, {0xFFD8, Other},
	{0xFFDA, ALetter}, {0xFFDD, Other}, {0xFFF9, Format}, {0xFFFC, Other},
	{0x10000, ALetter}, {0x1000C, Other}, {0x1000D, ALetter}, {0x10027, Other},
	{0x10028, ALetter}, {0x1003B, Other}, {0x1003C, ALetter}, {0x1003E, Other},
	{0x1003F, ALetter}, {0x1004E, Other}, {0x10050, ALetter}, {0x1005E, Other},
	{0x10080, ALetter}, {0x100FB, Other}, {0x10140, ALetter}, {0x10175, Other},
	{0x101FD, Extend}, {0x101FE, Other}, {0x10280, ALetter}, {0x1029D, Other},
	{0x102A0, ALetter}, {0x102D1, Other}, {0x102E0, Extend}, {0x102E1, Other},
	{0x10300, ALetter}, {0x10320, Other}, {0x1032D, ALetter}, {0x1034B, Other},
	{0x10350, ALetter}, {0x10376, Extend}, {0x1037B, Other}, {0x10380, ALetter},
	{0x1039E, Other}, {0x103A0, ALetter}, {0x103C4, Other}, {0x103C8, ALetter},
	{0x103D0, Other}, {0x103D1, ALetter}, {0x103D6, Other}, {0x10400, ALetter},
	{0x1049E, Other}, {0x104A0, Numeric}, {0x104AA, Other}, {0x104B0, ALetter},
	{0x104D4, Other}, {0x104D8, ALetter}, {0x104FC, Other}, {0x10500, ALetter},
	{0x10528, Other}, {0x10530, ALetter}, {0x10564, Other}, {0x10570, ALetter},
	{0x105BD, Other}, {0x10600, ALetter}, {0x10737, Other}, {0x10740, ALetter},
	{0x10756, Other}, {0x10760, ALetter}, {0x10768, Other}, {0x10780, ALetter},
	{0x107BB, Other}, {0x10800, ALetter}, {0x10806, Other}, {0x10808, ALetter},
	{0x10809, Other}, {0x1080A, ALetter}, {0x10836, Other}, {0x10837, ALetter},
	{0x10839, Other}, {0x1083C, ALetter}, {0x1083D, Other}, {0x1083F, ALetter},
	{0x10856, Other}, {0x10860, ALetter}, {0x10877, Other}, {0x10880, ALetter},
	{0x1089F, Other}, {0x108E0, ALetter}, {0x108F3, Other}, {0x108F4, ALetter},
	{0x108F6, Other}, {0x10900, ALetter}, {0x10916, Other}, {0x10920, ALetter},
	{0x1093A, Other}, {0x10980, ALetter}, {0x109B8, Other}, {0x109BE, ALetter},
	{0x109C0, Other}, {0x10A00, ALetter}, {0x10A01, Extend}, {0x10A04, Other},
	{0x10A05, Extend}, {0x10A07, Other}, {0x10A0C, Extend}, {0x10A10, ALetter},
	{0x10A14, Other}, {0x10A15, ALetter}, {0x10A18, Other}, {0x10A19, ALetter},
	{0x10A36, Other}, {0x10A38, Extend}, {0x10A3B, Other}, {0x10A3F, Extend},
	{0x10A40, Other}, {0x10A60, ALetter}, {0x10A7D, Other}, {0x10A80, ALetter},
	{0x10A9D, Other}, {0x10AC0, ALetter}, {0x10AC8, Other}, {0x10AC9, ALetter},
	{0x10AE5, Extend}, {0x10AE7, Other}, {0x10B00, ALetter}, {0x10B36, Other},
	{0x10B40, ALetter}, {0x10B56, Other}, {0x10B60, ALetter}, {0x10B73, Other},
	{0x10B80, ALetter}, {0x10B92, Other}, {0x10C00, ALetter}, {0x10C49, Other},
	{0x10C80, ALetter}, {0x10CB3, Other}, {0x10CC0, ALetter}, {0x10CF3, Other},
	{0x10D00, ALetter}, {0x10D24, Extend}, {0x10D28, Other}, {0x10D30, Numeric},
	{0x10D3A, Other}, {0x10E80, ALetter}, {0x10EAA, Other}, {0x10EAB, Extend},
	{0x10EAD, Other}, {0x10EB0, ALetter}, {0x10EB2, Other}, {0x10EFD, Extend},
	{0x10F00, ALetter}, {0x10F1D, Other}, {0x10F27, ALetter}, {0x10F28, Other},
	{0x10F30, ALetter}, {0x10F46, Extend}, {0x10F51, Other}, {0x10F70, ALetter},
	{0x10F82, Extend}, {0x10F86, Other}, {0x10FB0, ALetter}, {0x10FC5, Other},
	{0x10FE0, ALetter}, {0x10FF7, Other}, {0x11000, Extend}, {0x11003, ALetter},
	{0x11038, Extend}, {0x11047, Other}, {0x11066, Numeric}, {0x11070, Extend},
	{0x11071, ALetter}, {0x11073, Extend}, {0x11075, ALetter}, {0x11076, Other},
	{0x1107F, Extend}, {0x11083, ALetter}, {0x110B0, Extend}, {0x110BB, Other},
	{0x110BD, Format}, {0x110BE, Other}, {0x110C2, Extend}, {0x110C3, Other},
	{0x110CD, Format}, {0x110CE, Other}, {0x110D0, ALetter}, {0x110E9, Other},
	{0x110F0, Numeric}, {0x110FA, Other}, {0x11100, Extend}, {0x11103, ALetter},
	{0x11127, Extend}, {0x11135, Other}, {0x11136, Numeric}, {0x11140, Other},
	{0x11144, ALetter}, {0x11145, Extend}, {0x11147, ALetter}, {0x11148, Other},
	{0x11150, ALetter}, {0x11173, Extend}, {0x11174, Other}, {0x11176, ALetter},
	{0x11177, Other}, {0x11180, Extend}, {0x11183, ALetter}, {0x111B3, Extend},
	{0x111C1, ALetter}, {0x111C5, Other}, {0x111C9, Extend}, {0x111CD, Other},
	{0x111CE, Extend}, {0x111D0, Numeric}, {0x111DA, ALetter}, {0x111DB, Other},
	{0x111DC, ALetter}, {0x111DD, Other}, {0x11200, ALetter}, {0x11212, Other},
	{0x11213, ALetter}, {0x1122C, Extend}, {0x11238, Other}, {0x1123E, Extend},
	{0x1123F, ALetter}, {0x11241, Extend}, {0x11242, Other}, {0x11280, ALetter},
	{0x11287, Other}, {0x11288, ALetter}, {0x11289, Other}, {0x1128A, ALetter},
	{0x1128E, Other}, {0x1128F, ALetter}, {0x1129E, Other}, {0x1129F, ALetter},
	{0x112A9, Other}, {0x112B0, ALetter}, {0x112DF, Extend}, {0x112EB, Other},
	{0x112F0, Numeric}, {0x112FA, Other}, {0x11300, Extend}, {0x11304, Other},
	{0x11305, ALetter}, {0x1130D, Other}, {0x1130F, ALetter}, {0x11311, Other},
	{0x11313, ALetter}, {0x11329, Other}, {0x1132A, ALetter}, {0x11331, Other},
	{0x11332, ALetter}, {0x11334, Other}, {0x11335, ALetter}, {0x1133A, Other},
	{0x1133B, Extend}, {0x1133D, ALetter}, {0x1133E, Extend}, {0x11345, Other},
	{0x11347, Extend}, {0x11349, Other}, {0x1134B, Extend}, {0x1134E, Other},
	{0x11350, ALetter}, {0x11351, Other}, {0x11357, Extend}, {0x11358, Other},
	{0x1135D, ALetter}, {0x11362, Extend}, {0x11364, Other}, {0x11366, Extend},
	{0x1136D, Other}, {0x11370, Extend}, {0x11375, Other}, {0x11400, ALetter},
	{0x11435, Extend}, {0x11447, ALetter}, {0x1144B, Other}, {0x11450, Numeric},
	{0x1145A, Other}, {0x1145E, Extend}, {0x1145F, ALetter}, {0x11462, Other},
	{0x11480, ALetter}, {0x114B0, Extend}, {0x114C4, ALetter}, {0x114C6, Other},
	{0x114C7, ALetter}, {0x114C8, Other}, {0x114D0, Numeric}, {0x114DA, Other},
	{0x11580, ALetter}, {0x115AF, Extend}, {0x115B6, Other}, {0x115B8, Extend},
	{0x115C1, Other}, {0x115D8, ALetter}, {0x115DC, Extend}, {0x115DE, Other},
	{0x11600, ALetter}, {0x11630, Extend}, {0x11641, Other}, {0x11644, ALetter},
	{0x11645, Other}, {0x11650, Numeric}, {0x1165A, Other}, {0x11680, ALetter},
	{0x116AB, Extend}, {0x116B8, ALetter}, {0x116B9, Other}, {0x116C0, Numeric},
	{0x116CA, Other}, {0x11700, ALetter}, {0x1171B, Other}, {0x1171D, Extend},
	{0x1172C, Other}, {0x11730, Numeric}, {0x1173A, Other}, {0x11740, ALetter},
	{0x11747, Other}, {0x11800, ALetter}, {0x1182C, Extend}, {0x1183B, Other},
	{0x118A0, ALetter}, {0x118E0, Numeric}, {0x118EA, Other}, {0x118FF, ALetter},
	{0x11907, Other}, {0x11909, ALetter}, {0x1190A, Other}, {0x1190C, ALetter},
	{0x11914, Other}, {0x11915, ALetter}, {0x11917, Other}, {0x11918, ALetter},
	{0x11930, Extend}, {0x11936, Other}, {0x11937, Extend}, {0x11939, Other},
	{0x1193B, Extend}, {0x1193F, ALetter}, {0x11940, Extend}, {0x11941, ALetter},
	{0x11942, Extend}, {0x11944, Other}, {0x11950, Numeric}, {0x1195A, Other},
	{0x119A0, ALetter}, {0x119A8, Other}, {0x119AA, ALetter}, {0x119D1, Extend},
	{0x119D8, Other}, {0x119DA, Extend}, {0x119E1, ALetter}, {0x119E2, Other},
	{0x119E3, ALetter}, {0x119E4, Extend}, {0x119E5, Other}, {0x11A00, ALetter},
	{0x11A01, Extend}, {0x11A0B, ALetter}, {0x11A33, Extend}, {0x11A3A, ALetter},
	{0x11A3B, Extend}, {0x11A3F, Other}, {0x11A47, Extend}, {0x11A48, Other},
	{0x11A50, ALetter}, {0x11A51, Extend}, {0x11A5C, ALetter}, {0x11A8A, Extend},
	{0x11A9A, Other}, {0x11A9D, ALetter}, {0x11A9E, Other}, {0x11AB0, ALetter},
	{0x11AF9, Other}, {0x11C00, ALetter}, {0x11C09, Other}, {0x11C0A, ALetter},
	{0x11C2F, Extend}, {0x11C37, Other}, {0x11C38, Extend}, {0x11C40, ALetter},
	{0x11C41, Other}, {0x11C50, Numeric}, {0x11C5A, Other}, {0x11C72, ALetter},
	{0x11C90, Other}, {0x11C92, Extend}, {0x11CA8, Other}, {0x11CA9, Extend},
	{0x11CB7, Other}, {0x11D00, ALetter}, {0x11D07, Other}, {0x11D08, ALetter},
	{0x11D0A, Other}, {0x11D0B, ALetter}, {0x11D31, Extend}, {0x11D37, Other},
	{0x11D3A, Extend}, {0x11D3B, Other}, {0x11D3C, Extend}, {0x11D3E, Other},
	{0x11D3F, Extend}, {0x11D46, ALetter}, {0x11D47, Extend}, {0x11D48, Other},
	{0x11D50, Numeric}, {0x11D5A, Other}, {0x11D60, ALetter}, {0x11D66, Other},
	{0x11D67, ALetter}, {0x11D69, Other}, {0x11D6A, ALetter}, {0x11D8A, Extend},
	{0x11D8F, Other}, {0x11D90, Extend}, {0x11D92, Other}, {0x11D93, Extend},
	{0x11D98, ALetter}, {0x11D99, Other}, {0x11DA0, Numeric}, {0x11DAA, Other},
	{0x11EE0, ALetter}, {0x11EF3, Extend}, {0x11EF7, Other}, {0x11F00, Extend},
	{0x11F02, ALetter}, {0x11F03, Extend}, {0x11F04, ALetter}, {0x11F11, Other},
	{0x11F12, ALetter}, {0x11F34, Extend}, {0x11F3B, Other}, {0x11F3E, Extend},
	{0x11F43, Other}, {0x11F50, Numeric}, {0x11F5A, Other}, {0x11FB0, ALetter},
	{0x11FB1, Other}, {0x12000, ALetter}, {0x1239A, Other}, {0x12400, ALetter},
	{0x1246F, Other}, {0x12480, ALetter}, {0x12544, Other}, {0x12F90, ALetter},
	{0x12FF1, Other}, {0x13000, ALetter}, {0x13430, Format}, {0x13440, Extend},
	{0x13441, ALetter}, {0x13447, Extend}, {0x13456, Other}, {0x14400, ALetter},
	{0x14647, Other}, {0x16800, ALetter}, {0x16A39, Other}, {0x16A40, ALetter},
	{0x16A5F, Other}, {0x16A60, Numeric}, {0x16A6A, Other}, {0x16A70, ALetter},
	{0x16ABF, Other}, {0x16AC0, Numeric}, {0x16ACA, Other}, {0x16AD0, ALetter},
	{0x16AEE, Other}, {0x16AF0, Extend}, {0x16AF5, Other}, {0x16B00, ALetter},
	{0x16B30, Extend}, {0x16B37, Other}, {0x16B40, ALetter}, {0x16B44, Other},
	{0x16B50, Numeric}, {0x16B5A, Other}, {0x16B63, ALetter}, {0x16B78, Other},
	{0x16B7D, ALetter}, {0x16B90, Other}, {0x16E40, ALetter}, {0x16E80, Other},
	{0x16F00, ALetter}, {0x16F4B, Other}, {0x16F4F, Extend}, {0x16F50, ALetter},
	{0x16F51, Extend}, {0x16F88, Other}, {0x16F8F, Extend}, {0x16F93, ALetter},
	{0x16FA0, Other}, {0x16FE0, ALetter}, {0x16FE2, Other}, {0x16FE3, ALetter},
	{0x16FE4, Extend}, {0x16FE5, Other}, {0x16FF0, Extend}, {0x16FF2, Other},
	{0x1AFF0, Katakana}, {0x1AFF4, Other}, {0x1AFF5, Katakana}, {0x1AFFC, Other},
	{0x1AFFD, Katakana}, {0x1AFFF, Other}, {0x1B000, Katakana}, {0x1B001, Other},
	{0x1B120, Katakana}, {0x1B123, Other}, {0x1B155, Katakana}, {0x1B156, Other},
	{0x1B164, Katakana}, {0x1B168, Other}, {0x1BC00, ALetter}, {0x1BC6B, Other},
	{0x1BC70, ALetter}, {0x1BC7D, Other}, {0x1BC80, ALetter}, {0x1BC89, Other},
	{0x1BC90, ALetter}, {0x1BC9A, Other}, {0x1BC9D, Extend}, {0x1BC9F, Other},
	{0x1BCA0, Format}, {0x1BCA4, Other}, {0x1CF00, Extend}, {0x1CF2E, Other},
	{0x1CF30, Extend}, {0x1CF47, Other}, {0x1D165, Extend}, {0x1D16A, Other},
	{0x1D16D, Extend}, {0x1D173, Format}, {0x1D17B, Extend}, {0x1D183, Other},
	{0x1D185, Extend}, {0x1D18C, Other}, {0x1D1AA, Extend}, {0x1D1AE, Other},
	{0x1D242, Extend}, {0x1D245, Other}, {0x1D400, ALetter}, {0x1D455, Other},
	{0x1D456, ALetter}, {0x1D49D, Other}, {0x1D49E, ALetter}, {0x1D4A0, Other},
	{0x1D4A2, ALetter}, {0x1D4A3, Other}, {0x1D4A5, ALetter}, {0x1D4A7, Other},
	{0x1D4A9, ALetter}, {0x1D4AD, Other}, {0x1D4AE, ALetter}, {0x1D4BA, Other},
	{0x1D4BB, ALetter}, {0x1D4BC, Other}, {0x1D4BD, ALetter}, {0x1D4C4, Other},
	{0x1D4C5, ALetter}, {0x1D506, Other}, {0x1D507, ALetter}, {0x1D50B, Other},
	{0x1D50D, ALetter}, {0x1D515, Other}, {0x1D516, ALetter}, {0x1D51D, Other},
	{0x1D51E, ALetter}, {0x1D53A, Other}, {0x1D53B, ALetter}, {0x1D53F, Other},
	{0x1D540, ALetter}, {0x1D545, Other}, {0x1D546, ALetter}, {0x1D547, Other},
	{0x1D54A, ALetter}, {0x1D551, Other}, {0x1D552, ALetter}, {0x1D6A6, Other},
	{0x1D6A8, ALetter}, {0x1D6C1, Other}, {0x1D6C2, ALetter}, {0x1D6DB, Other},
	{0x1D6DC, ALetter}, {0x1D6FB, Other}, {0x1D6FC, ALetter}, {0x1D715, Other},
	{0x1D716, ALetter}, {0x1D735, Other}, {0x1D736, ALetter}, {0x1D74F, Other},
	{0x1D750, ALetter}, {0x1D76F, Other}, {0x1D770, ALetter}, {0x1D789, Other},
	{0x1D78A, ALetter}, {0x1D7A9, Other}, {0x1D7AA, ALetter}, {0x1D7C3, Other},
	{0x1D7C4, ALetter}, {0x1D7CC, Other}, {0x1D7CE, Numeric}, {0x1D800, Other},
	{0x1DA00, Extend}, {0x1DA37, Other}, {0x1DA3B, Extend}, {0x1DA6D, Other},
	{0x1DA75, Extend}, {0x1DA76, Other}, {0x1DA84, Extend}, {0x1DA85, Other},
	{0x1DA9B, Extend}, {0x1DAA0, Other}, {0x1DAA1, Extend}, {0x1DAB0, Other},
	{0x1DF00, ALetter}, {0x1DF1F, Other}, {0x1DF25, ALetter}, {0x1DF2B, Other},
	{0x1E000, Extend}, {0x1E007, Other}, {0x1E008, Extend}, {0x1E019, Other},
	{0x1E01B, Extend}, {0x1E022, Other}, {0x1E023, Extend}, {0x1E025, Other},
	{0x1E026, Extend}, {0x1E02B, Other}, {0x1E030, ALetter}, {0x1E06E, Other},
	{0x1E08F, Extend}, {0x1E090, Other}, {0x1E100, ALetter}, {0x1E12D, Other},
	{0x1E130, Extend}, {0x1E137, ALetter}, {0x1E13E, Other}, {0x1E140, Numeric},
	{0x1E14A, Other}, {0x1E14E, ALetter}, {0x1E14F, Other}, {0x1E290, ALetter},
	{0x1E2AE, Extend}, {0x1E2AF, Other}, {0x1E2C0, ALetter}, {0x1E2EC, Extend},
	{0x1E2F0, Numeric}, {0x1E2FA, Other}, {0x1E4D0, ALetter}, {0x1E4EC, Extend},
	{0x1E4F0, Numeric}, {0x1E4FA, Other}, {0x1E7E0, ALetter}, {0x1E7E7, Other},
	{0x1E7E8, ALetter}, {0x1E7EC, Other}, {0x1E7ED, ALetter}, {0x1E7EF, Other},
	{0x1E7F0, ALetter}, {0x1E7FF, Other}, {0x1E800, ALetter}, {0x1E8C5, Other},
	{0x1E8D0, Extend}, {0x1E8D7, Other}, {0x1E900, ALetter}, {0x1E944, Extend},
	{0x1E94B, ALetter}, {0x1E94C, Other}, {0x1E950, Numeric}, {0x1E95A, Other},
	{0x1EE00, ALetter}, {0x1EEBC, Other}, {0x1F130, ALetter}, {0x1F14A, Other},
	{0x1F150, ALetter}, {0x1F16A, Other}, {0x1F170, ALetter}, {0x1F18A, Other},
	{0x1F1E6, Regional_Indicator}, {0x1F200, Other}, {0x1F3FB, Extend}, {0x1F400, Other},
	{0x1FBF0, Numeric}, {0x1FBFA, Other}, {0xE0001, Format}, {0xE0002, Other},
	{0xE0020, Extend}, {0xE0080, Other}, {0xE0100, Extend}, {0xE01F0, Other},
}
