package ghash

// GHASH_TABLE holds 256 fixed pseudo-random 64-bit constants used by the Gear
// rolling hash. The values are generated once (splitmix64, fixed seed) and then
// frozen here as a build-time constant: changing any entry changes every chunk
// boundary and every derived identifier downstream, so this table is part of the
// wire-equivalent contract described in spec.md section 6.
var GHASH_TABLE = [256]uint64{
	0x306e8df5bd2e86ba, 0x56fe04c3a2e17f97, 0x17a5c9d499e4ee83, 0x370382b08880ea69,
	0x12739d636a323197, 0xeafb9059435c1aaa, 0x2b5a02b5bf9cec44, 0x8ab48003887757b9,
	0x0094e51c839db852, 0x7b4357e4115ce0ae, 0xb3674e8c4bfc076f, 0x2a01b45f2a819522,
	0x0f3f1d5c655441db, 0x9a2e2e65a0b92bcb, 0x7e7344d83094d224, 0x8b1699525ecdf9d3,
	0x0fa3550b4ee7fa40, 0xaed0f1f8d806741d, 0xccde94ba70d75748, 0xd76bfa87b32b3cea,
	0x3a55f1797fc952e2, 0x3cf15a9b49c07271, 0x64bd7adad25b6081, 0x0cd3e8fdad21b3a5,
	0x08368605255b451c, 0x9460d18f6a77cfc3, 0x40a73e50d7566647, 0x58da48ab1dcde9ba,
	0x5e2db21a5a6e4735, 0x913aa7e950f66b40, 0xf410c2b9bedf2fa3, 0x576d784e1b272e05,
	0x11c6e51b3acc049c, 0xe74ad0b608d2a7ce, 0xe0a43a6f3028be88, 0x924426c6a418e764,
	0x4669ab7efe8a6cd3, 0xe457423bb53f79f5, 0x0118b7eaf27031c5, 0x3b157a201731d003,
	0x72e36236d603bcb5, 0x1f549ddc54d3e13f, 0x5ab932e568e10a96, 0x860ac2c6d532a165,
	0x7baf484bbcf5831a, 0xb2d53c6a26d04c17, 0xe10f6e19fa08bd6a, 0x2f57c464938e4633,
	0xe21a0db28bccfcb5, 0xc0a1401c0714ca91, 0x267119922d28aaa9, 0x0811ab9735a3b8af,
	0xeb6dffd58df86c94, 0xc18396f1792f29da, 0xe4abcb74fa0c86a3, 0x5820824a7cdf220e,
	0x5d3c321e5f43f00a, 0xc3dd5aff7a2eabfd, 0x16021ba44c0e0471, 0xd0b7f7db87152051,
	0x61a21102f985edf9, 0x812270e7e713d1b7, 0xd74c2aa0d1b8693b, 0xfac39f776111f03b,
	0xd91a9dbc2a090e96, 0xad52d582874034a8, 0xe1cce3aca940b625, 0xf9c58e238c87e35b,
	0xc166146b3256d90c, 0xe3a6e75ebeaec5df, 0x0c11dee97fb78b15, 0x861d82ce7ef9a62a,
	0x111c5651fb8387a0, 0x90652900ef846eca, 0x339b352a1d4c725e, 0x6947393404ccdde1,
	0x636f17a7e9001cd4, 0xc3bdb6d7f5813e85, 0x99383873dde6f8ec, 0xa62bbf1a6ad48a84,
	0x27e2470c6a214d8f, 0x7ef97bdae76d18e5, 0x7ab0a4ac3e72f176, 0xcc5d5a096af6d3ee,
	0x1fed399db6d3f840, 0x29905f26797fa275, 0x115142532a16289b, 0xaf6581a415c38056,
	0x3e06d72ee7389821, 0xcca415f8552c2e32, 0x650071ab2f7ec053, 0x552aa1d4fa10ec04,
	0x9a737ea4236dfae9, 0x4cd25fd3157799c4, 0xa1876102f2b189e5, 0x7660633e4bb1c697,
	0x80703adbb3493b43, 0x14293aa9dc263778, 0x502a8d9dd3860219, 0xcee60dfc439fdb70,
	0xd3a7901f8ced504d, 0x848a16fbe7b393d6, 0x2d79d67b3cefb166, 0xd2cc415d8a3074c8,
	0x548a0851640a5c98, 0xdc09c6f292fec5ba, 0x8eb43e5ce2ef9ef2, 0x703b2c540aa247a0,
	0x68af8862ebe19cd1, 0x6259ed9c8d0353b5, 0xdd5847f11ff847f1, 0x8c65162d6d8530f1,
	0x681cae1d53491233, 0xe9d3d7629cba95d0, 0x9d301dfd3f7a71e7, 0x053cb11ef72e2990,
	0xa4e98be576336ca0, 0x5782fcc7cc304961, 0xa04bf5273020adc3, 0x3de969b08ed411e3,
	0x6ba1fa8f1a84d7ff, 0x0d74e581b96a233e, 0x9fb0cc78d28cc537, 0x9227f9cfba5e3670,
	0xf263dcf68c2bcd16, 0xb0466bbd4e5f2268, 0x2dda079d198ae4f6, 0x0db32fca8f76a146,
	0x554e02c6fb8b796a, 0x1c1e59d48ffd3032, 0x1864f139c2566856, 0xb8fdbf16b067ed07,
	0x2016ed08074ae012, 0x0656768a145ae5f2, 0xcba09d201cf95dc9, 0x54dbdda465dfaebe,
	0x470ac8205830c318, 0xdb41f7b97a74ada6, 0x84eb1975fcc8c580, 0x6a6f799bd9c63d84,
	0xed1b06cb2c4f30ac, 0x57d4e71deda8ec49, 0x7bed87a7e5e9a759, 0x7bfcb21cdd83e56d,
	0x4671bb737cff21bf, 0x659d6da4aafca4d4, 0xdbec101bd47c87d1, 0xbc4d950868587b42,
	0x4f92cf19bee06999, 0x29a82464eb68dc13, 0x2798820421445519, 0x0db864bb105d35ae,
	0x9e10e0278052257f, 0x71d3597cea4620a9, 0x40fb5d1e8bddc8eb, 0x0aadb7f52d21e9a1,
	0xa3c46a9e94d21d4b, 0x03159894d14d98ea, 0xf6103f6364d3154e, 0xef89d94b9f8d316c,
	0x518324a750f4b122, 0xdf32f26d322f50e7, 0xffdbfb1558576471, 0x6c3c429c733bc036,
	0x4b986348939cca3f, 0x7d01a61e72966883, 0x5d0b60f575ded429, 0xfa609dec18120055,
	0xcb4dc3e3a880790a, 0xe7157b35eb6f07f4, 0x3ab94c4c76dfa2ba, 0x65c1bd0864f088af,
	0x38ece28639a1b564, 0xdec177bd9e464d4a, 0xba7623810b1da2da, 0x130e2641ae206787,
	0x15ec9268ba01e379, 0x87e1bcca386f9feb, 0x7c13de1a2cf3d5f2, 0x9ad16ac29091af4d,
	0x711667a2dc3c3448, 0x57634b5f91239d80, 0x489b5ea25d6f729f, 0xa7786c78d949a010,
	0x703473599776c3dc, 0x34985faac623ce80, 0x2414d94a40d37a10, 0x019f88e14245f813,
	0x84d7b2891923cb5d, 0xed36606257d3017a, 0x72c8f750c2853b6a, 0xeab20a434c83d6a4,
	0x6fea8eac7d3b182b, 0x14f120590359a91c, 0xfcd37d5f2a913fac, 0x91d1eb417df89432,
	0x66eec15f326efda8, 0xd31492c0647deedf, 0xbfaca5a159ee87d5, 0x66c81c82b46ed853,
	0x64787b25baa01dce, 0x0955bd53277fa711, 0x18cd9d0272955281, 0xa9721b46853fd288,
	0x68ce567a9113c857, 0x7d737b904771b91d, 0x823834b043dc1a69, 0x94130ddfe089cd81,
	0x025dab05e6419f29, 0xdc68b0d683936ea5, 0xb12af5be51db8e78, 0xb3813ade29ee6824,
	0x84bc43ceca1c7020, 0xd6bedf3c25c39b5c, 0x4be1f4304aa71a34, 0x56ef9c27f4288d5a,
	0x3caade90a03bcf19, 0x1b6f09e9b2cdcc38, 0x2037f415b5f9bc84, 0x1fdca359e85f9a49,
	0x519da555511234ff, 0xf7439979dde1fa2d, 0x33fa3e0ad2f396ff, 0xf33370917ac1c713,
	0xf97edc11206e0094, 0xc0365f9fc3ba6bba, 0xc836e8d830e91dd1, 0xf5e744104ea3d660,
	0x00abf424bafa03c5, 0xc8cc226e7d05ab61, 0x3991058bc5cf0874, 0xf834dd5bb48895ba,
	0x55a1a3db13d3baee, 0x5b325652d3f2b035, 0x597e37316c3d8298, 0x8077ac002fd1c56b,
	0xeb84632ea4901af5, 0x2829b6f3125f6d42, 0x6dd120470ae7e4c7, 0x32cbaa52fb984151,
	0xa2cdc86a94da8b6e, 0x13ef9be2ccf9602e, 0xf44ecb0cb299fb4f, 0x3eb8af524dea9361,
	0x9bbb41fe572a6ed6, 0x6ca183c5309c9362, 0x693a678e7c3d6561, 0xb1b51d1e4190f1fc,
	0x32497435ce142b5f, 0x3bc9396e26407d20, 0x89cf2319fe37b70f, 0x6d155a7eead22751,
	0xe2623a0d2f17621f, 0xee7ccbbee6cdba98, 0x4dc979ad451ccb9c, 0x358ed8aead4bde51,
}
