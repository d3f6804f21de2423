package catalog

import "github.com/Rishi-raj-19/Visual-Product-Matcher/internal/model"

// seedProducts is the built-in demo catalog, used when no CATALOG_PATH
// is configured. cmd/gencatalog can export it to .xlsx or .json.
var seedProducts = []model.Product{
	{ID: "p1", Name: "Classic White Sneakers", Category: "Footwear", Price: 89.99, ImageURL: "https://images.unsplash.com/photo-1549298916-b41d501d3772?auto=format&fit=crop&w=400&q=80", Description: "Minimalist white leather sneakers."},
	{ID: "p2", Name: "Red Running Shoes", Category: "Footwear", Price: 120.00, ImageURL: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=400&q=80", Description: "High-performance red running shoes."},
	{ID: "p3", Name: "Leather Boots", Category: "Footwear", Price: 150.00, ImageURL: "https://images.unsplash.com/photo-1608256246200-53e635b5b69f?auto=format&fit=crop&w=400&q=80", Description: "Durable brown leather boots."},
	{ID: "p4", Name: "Summer Sandals", Category: "Footwear", Price: 45.00, ImageURL: "https://images.unsplash.com/photo-1621251399462-2384742442c6?auto=format&fit=crop&w=400&q=80", Description: "Comfortable open-toe sandals."},
	{ID: "p5", Name: "High Top Canvas", Category: "Footwear", Price: 65.00, ImageURL: "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?auto=format&fit=crop&w=400&q=80", Description: "Vintage style high top canvas shoes."},
	{ID: "p6", Name: "Formal Oxfords", Category: "Footwear", Price: 180.00, ImageURL: "https://images.unsplash.com/photo-1614252235316-8c857d38b5f4?auto=format&fit=crop&w=400&q=80", Description: "Black polished oxford shoes."},
	{ID: "p7", Name: "Hiking Boots", Category: "Footwear", Price: 130.00, ImageURL: "https://images.unsplash.com/photo-1628253747716-0c4f5c90fdda?auto=format&fit=crop&w=400&q=80", Description: "Rugged waterproof hiking boots."},
	{ID: "p8", Name: "Slip-on Loafers", Category: "Footwear", Price: 95.00, ImageURL: "https://images.unsplash.com/photo-1533867617858-e7b97e060509?auto=format&fit=crop&w=400&q=80", Description: "Casual suede slip-on loafers."},
	{ID: "p9", Name: "Sport Trainers", Category: "Footwear", Price: 110.00, ImageURL: "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?auto=format&fit=crop&w=400&q=80", Description: "Blue athletic training shoes."},
	{ID: "p10", Name: "Ankle Boots", Category: "Footwear", Price: 140.00, ImageURL: "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?auto=format&fit=crop&w=400&q=80", Description: "Stylish black ankle boots."},
	{ID: "p11", Name: "Denim Jacket", Category: "Clothing", Price: 75.00, ImageURL: "https://images.unsplash.com/photo-1611312449408-fcece27cdbb7?auto=format&fit=crop&w=400&q=80", Description: "Classic blue denim jacket."},
	{ID: "p12", Name: "Cotton T-Shirt", Category: "Clothing", Price: 25.00, ImageURL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=400&q=80", Description: "Basic white cotton t-shirt."},
	{ID: "p13", Name: "Summer Dress", Category: "Clothing", Price: 60.00, ImageURL: "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?auto=format&fit=crop&w=400&q=80", Description: "Floral pattern summer dress."},
	{ID: "p14", Name: "Wool Sweater", Category: "Clothing", Price: 85.00, ImageURL: "https://images.unsplash.com/photo-1576566588028-4147f3842f27?auto=format&fit=crop&w=400&q=80", Description: "Cozy grey wool sweater."},
	{ID: "p15", Name: "Chino Pants", Category: "Clothing", Price: 55.00, ImageURL: "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?auto=format&fit=crop&w=400&q=80", Description: "Beige slim-fit chino pants."},
	{ID: "p16", Name: "Hooded Sweatshirt", Category: "Clothing", Price: 45.00, ImageURL: "https://images.unsplash.com/photo-1556821840-3a63f95609a7?auto=format&fit=crop&w=400&q=80", Description: "Black oversized hoodie."},
	{ID: "p17", Name: "Silk Blouse", Category: "Clothing", Price: 90.00, ImageURL: "https://images.unsplash.com/photo-1604176354204-9268737828c4?auto=format&fit=crop&w=400&q=80", Description: "Elegant emerald green silk blouse."},
	{ID: "p18", Name: "Cargo Shorts", Category: "Clothing", Price: 35.00, ImageURL: "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?auto=format&fit=crop&w=400&q=80", Description: "Practical khaki cargo shorts."},
	{ID: "p19", Name: "Blazer", Category: "Clothing", Price: 150.00, ImageURL: "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?auto=format&fit=crop&w=400&q=80", Description: "Navy blue formal blazer."},
	{ID: "p20", Name: "Rain Coat", Category: "Clothing", Price: 110.00, ImageURL: "https://images.unsplash.com/photo-1591852504445-5d666d92630a?auto=format&fit=crop&w=400&q=80", Description: "Yellow waterproof raincoat."},
	{ID: "p21", Name: "Leather Tote Bag", Category: "Accessories", Price: 180.00, ImageURL: "https://images.unsplash.com/photo-1591561954557-26941169b49e?auto=format&fit=crop&w=400&q=80", Description: "Spacious brown leather tote."},
	{ID: "p22", Name: "Aviator Sunglasses", Category: "Accessories", Price: 120.00, ImageURL: "https://images.unsplash.com/photo-1511499767150-a48a237f0083?auto=format&fit=crop&w=400&q=80", Description: "Gold frame aviator sunglasses."},
	{ID: "p23", Name: "Silver Watch", Category: "Accessories", Price: 250.00, ImageURL: "https://images.unsplash.com/photo-1524592094714-0f0654e20314?auto=format&fit=crop&w=400&q=80", Description: "Stainless steel analog watch."},
	{ID: "p24", Name: "Baseball Cap", Category: "Accessories", Price: 25.00, ImageURL: "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?auto=format&fit=crop&w=400&q=80", Description: "Classic navy baseball cap."},
	{ID: "p25", Name: "Silk Scarf", Category: "Accessories", Price: 45.00, ImageURL: "https://images.unsplash.com/photo-1584030373081-f37b7bb4fa8e?auto=format&fit=crop&w=400&q=80", Description: "Patterned silk neck scarf."},
	{ID: "p26", Name: "Leather Belt", Category: "Accessories", Price: 40.00, ImageURL: "https://images.unsplash.com/photo-1624222247344-550fb60583dc?auto=format&fit=crop&w=400&q=80", Description: "Black leather belt with silver buckle."},
	{ID: "p27", Name: "Backpack", Category: "Accessories", Price: 65.00, ImageURL: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&w=400&q=80", Description: "Grey laptop backpack."},
	{ID: "p28", Name: "Beanie Hat", Category: "Accessories", Price: 20.00, ImageURL: "https://images.unsplash.com/photo-1576871337632-b9aef4c17ab9?auto=format&fit=crop&w=400&q=80", Description: "Warm knit beanie."},
	{ID: "p29", Name: "Crossbody Bag", Category: "Accessories", Price: 95.00, ImageURL: "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?auto=format&fit=crop&w=400&q=80", Description: "Small black crossbody bag."},
	{ID: "p30", Name: "Gold Necklace", Category: "Accessories", Price: 130.00, ImageURL: "https://images.unsplash.com/photo-1599643478518-17488fbbcd75?auto=format&fit=crop&w=400&q=80", Description: "Minimalist gold chain necklace."},
	{ID: "p31", Name: "Modern Desk Lamp", Category: "Home", Price: 55.00, ImageURL: "https://images.unsplash.com/photo-1507473888900-52e1ad145986?auto=format&fit=crop&w=400&q=80", Description: "Adjustable LED desk lamp."},
	{ID: "p32", Name: "Ceramic Vase", Category: "Home", Price: 35.00, ImageURL: "https://images.unsplash.com/photo-1581783342308-f792ca11df53?auto=format&fit=crop&w=400&q=80", Description: "Handmade white ceramic vase."},
	{ID: "p33", Name: "Throw Pillow", Category: "Home", Price: 25.00, ImageURL: "https://images.unsplash.com/photo-1579656381282-b56c5057bc93?auto=format&fit=crop&w=400&q=80", Description: "Decorative geometric throw pillow."},
	{ID: "p34", Name: "Wall Clock", Category: "Home", Price: 45.00, ImageURL: "https://images.unsplash.com/photo-1509048191080-d2984bad6ae5?auto=format&fit=crop&w=400&q=80", Description: "Minimalist wooden wall clock."},
	{ID: "p35", Name: "Succulent Pot", Category: "Home", Price: 15.00, ImageURL: "https://images.unsplash.com/photo-1485955900006-10f4d324d411?auto=format&fit=crop&w=400&q=80", Description: "Small concrete planter."},
	{ID: "p36", Name: "Coffee Mug Set", Category: "Home", Price: 30.00, ImageURL: "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?auto=format&fit=crop&w=400&q=80", Description: "Set of 4 ceramic coffee mugs."},
	{ID: "p37", Name: "Area Rug", Category: "Home", Price: 120.00, ImageURL: "https://images.unsplash.com/photo-1505409627970-63b5f83d3cbe?auto=format&fit=crop&w=400&q=80", Description: "Woven cotton area rug."},
	{ID: "p38", Name: "Table Fan", Category: "Home", Price: 60.00, ImageURL: "https://images.unsplash.com/photo-1618941716939-553df5c6c27e?auto=format&fit=crop&w=400&q=80", Description: "Retro style desk fan."},
	{ID: "p39", Name: "Picture Frame", Category: "Home", Price: 20.00, ImageURL: "https://images.unsplash.com/photo-1534349762913-96c225508b48?auto=format&fit=crop&w=400&q=80", Description: "Black aluminum picture frame."},
	{ID: "p40", Name: "Scented Candle", Category: "Home", Price: 28.00, ImageURL: "https://images.unsplash.com/photo-1602825389660-3f7f7baf89ad?auto=format&fit=crop&w=400&q=80", Description: "Lavender scented soy candle."},
	{ID: "p41", Name: "Wireless Headphones", Category: "Electronics", Price: 199.00, ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=400&q=80", Description: "Noise-cancelling over-ear headphones."},
	{ID: "p42", Name: "Smart Speaker", Category: "Electronics", Price: 99.00, ImageURL: "https://images.unsplash.com/photo-1589492477829-5e65395b66cc?auto=format&fit=crop&w=400&q=80", Description: "Voice-controlled smart home speaker."},
	{ID: "p43", Name: "Digital Camera", Category: "Electronics", Price: 450.00, ImageURL: "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?auto=format&fit=crop&w=400&q=80", Description: "Compact mirrorless camera."},
	{ID: "p44", Name: "Tablet Cover", Category: "Electronics", Price: 30.00, ImageURL: "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?auto=format&fit=crop&w=400&q=80", Description: "Protective leather tablet case."},
	{ID: "p45", Name: "Power Bank", Category: "Electronics", Price: 40.00, ImageURL: "https://images.unsplash.com/photo-1609592424303-36c1c1374f14?auto=format&fit=crop&w=400&q=80", Description: "High-capacity portable charger."},
	{ID: "p46", Name: "Smart Watch", Category: "Electronics", Price: 250.00, ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=400&q=80", Description: "Fitness tracking smart watch."},
	{ID: "p47", Name: "Bluetooth Earbuds", Category: "Electronics", Price: 129.00, ImageURL: "https://images.unsplash.com/photo-1572569028738-411a561033f4?auto=format&fit=crop&w=400&q=80", Description: "True wireless in-ear headphones."},
	{ID: "p48", Name: "Mouse", Category: "Electronics", Price: 60.00, ImageURL: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?auto=format&fit=crop&w=400&q=80", Description: "Ergonomic wireless mouse."},
	{ID: "p49", Name: "Keyboard", Category: "Electronics", Price: 110.00, ImageURL: "https://images.unsplash.com/photo-1587829741301-dc798b91a05c?auto=format&fit=crop&w=400&q=80", Description: "Mechanical gaming keyboard."},
	{ID: "p50", Name: "Webcam", Category: "Electronics", Price: 80.00, ImageURL: "https://images.unsplash.com/photo-1598965675045-45c5e72077f8?auto=format&fit=crop&w=400&q=80", Description: "HD streaming webcam."},}
